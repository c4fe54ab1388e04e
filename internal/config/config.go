package config

import (
	"encoding/json"
	"flag"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds client settings. Precedence: env > flags > JSON file > defaults.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	LogLevel       string
	LogFile        string
	GzipRequests   bool
	CopyResult     bool
	OpenResult     bool
	ConfigPath     string
}

type fileConfig struct {
	ServerURL      *string `json:"server_url"`
	RequestTimeout *string `json:"request_timeout"`
	LogLevel       *string `json:"log_level"`
	LogFile        *string `json:"log_file"`
	GzipRequests   *bool   `json:"gzip_requests"`
}

// NewConfig builds the configuration from a .env file, the JSON config file,
// command-line flags and environment variables.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerURL:      "http://localhost:8000",
		RequestTimeout: 10 * time.Second,
		LogLevel:       "info",
		LogFile:        "",
	}

	flag.StringVar(&cfg.ServerURL, "b", cfg.ServerURL, "Shortening service URL (e.g. http://localhost:8000)")
	flag.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "Request timeout")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Path to log file (stderr when empty)")
	flag.BoolVar(&cfg.GzipRequests, "z", cfg.GzipRequests, "Send gzip-compressed request bodies")
	flag.BoolVar(&cfg.CopyResult, "copy", cfg.CopyResult, "Copy the short URL to the clipboard (shorten command)")
	flag.BoolVar(&cfg.OpenResult, "open", cfg.OpenResult, "Open the short URL in the browser (shorten command)")
	flag.StringVar(&cfg.ConfigPath, "c", os.Getenv("CONFIG"), "Path to JSON config file")

	flag.Parse()

	if cfg.ConfigPath != "" {
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cfg.applyFile(cfg.ConfigPath, set)
	}

	if envServerURL := os.Getenv("SERVER_URL"); envServerURL != "" {
		cfg.ServerURL = envServerURL
	}

	if envTimeout := os.Getenv("REQUEST_TIMEOUT"); envTimeout != "" {
		if d, err := time.ParseDuration(envTimeout); err == nil {
			cfg.RequestTimeout = d
		}
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	if envLogFile := os.Getenv("LOG_FILE"); envLogFile != "" {
		cfg.LogFile = envLogFile
	}

	if envGzip := os.Getenv("GZIP_REQUESTS"); envGzip != "" {
		if b, err := strconv.ParseBool(envGzip); err == nil {
			cfg.GzipRequests = b
		}
	}

	return cfg
}

// applyFile fills in values from the JSON file for flags not given explicitly.
// A missing or malformed file leaves the configuration untouched.
func (c *Config) applyFile(path string, set map[string]bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return
	}

	if fc.ServerURL != nil && !set["b"] {
		c.ServerURL = *fc.ServerURL
	}

	if fc.RequestTimeout != nil && !set["t"] {
		if d, err := time.ParseDuration(*fc.RequestTimeout); err == nil {
			c.RequestTimeout = d
		}
	}

	if fc.LogLevel != nil && !set["l"] {
		c.LogLevel = *fc.LogLevel
	}

	if fc.LogFile != nil && !set["log-file"] {
		c.LogFile = *fc.LogFile
	}

	if fc.GzipRequests != nil && !set["z"] {
		c.GzipRequests = *fc.GzipRequests
	}
}

// ServerPort returns the port of the configured server URL, falling back to
// the scheme default. A URL given without a scheme is read as http.
func (c *Config) ServerPort() string {
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		u, err = url.Parse("http://" + c.ServerURL)
	}
	if err != nil || u.Hostname() == "" {
		return ""
	}

	if p := u.Port(); p != "" {
		return p
	}

	if u.Scheme == "https" {
		return "443"
	}
	return "80"
}

// DefaultLogFile is where the interactive view logs when no log file is set.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "shortener-client.log"
	}
	return filepath.Join(dir, "shortener-client", "client.log")
}
