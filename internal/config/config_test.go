package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfigDefault(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	t.Setenv("SERVER_URL", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("CONFIG", "")

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	os.Args = []string{"cmd"}

	cfg := NewConfig()

	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("NewConfig() ServerURL = %v, want %v", cfg.ServerURL, "http://localhost:8000")
	}

	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("NewConfig() RequestTimeout = %v, want %v", cfg.RequestTimeout, 10*time.Second)
	}

	if cfg.GzipRequests {
		t.Errorf("NewConfig() GzipRequests = %v, want %v", cfg.GzipRequests, false)
	}
}

func TestNewConfigWithArgs(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	t.Setenv("SERVER_URL", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("CONFIG", "")

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	os.Args = []string{"cmd", "-b", "http://localhost:9000", "-t", "3s", "-z", "-copy", "shorten", "https://example.com"}

	cfg := NewConfig()

	if cfg.ServerURL != "http://localhost:9000" {
		t.Errorf("NewConfig() ServerURL = %v, want %v", cfg.ServerURL, "http://localhost:9000")
	}

	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("NewConfig() RequestTimeout = %v, want %v", cfg.RequestTimeout, 3*time.Second)
	}

	if !cfg.GzipRequests || !cfg.CopyResult || cfg.OpenResult {
		t.Errorf("NewConfig() flags = gzip:%v copy:%v open:%v", cfg.GzipRequests, cfg.CopyResult, cfg.OpenResult)
	}

	if got := flag.Args(); len(got) != 2 || got[0] != "shorten" {
		t.Errorf("flag.Args() = %v, want [shorten https://example.com]", got)
	}
}

func TestNewConfigEnv(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	t.Setenv("SERVER_URL", "http://env:8000")
	t.Setenv("REQUEST_TIMEOUT", "250ms")
	t.Setenv("GZIP_REQUESTS", "true")
	t.Setenv("CONFIG", "")

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	os.Args = []string{"cmd", "-b", "http://flag:8000"}

	cfg := NewConfig()

	if cfg.ServerURL != "http://env:8000" {
		t.Errorf("NewConfig() ServerURL = %v, want %v", cfg.ServerURL, "http://env:8000")
	}

	if cfg.RequestTimeout != 250*time.Millisecond {
		t.Errorf("NewConfig() RequestTimeout = %v, want %v", cfg.RequestTimeout, 250*time.Millisecond)
	}

	if !cfg.GzipRequests {
		t.Errorf("NewConfig() GzipRequests = %v, want %v", cfg.GzipRequests, true)
	}
}

func TestServerPort(t *testing.T) {
	tests := []struct {
		serverURL string
		want      string
	}{
		{serverURL: "http://localhost:8000", want: "8000"},
		{serverURL: "http://localhost:9090/api", want: "9090"},
		{serverURL: "https://short.ly", want: "443"},
		{serverURL: "http://short.ly", want: "80"},
		{serverURL: "localhost:8000", want: "8000"},
		{serverURL: "127.0.0.1:9000", want: "9000"},
		{serverURL: "short.ly", want: "80"},
		{serverURL: "://bad", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.serverURL, func(t *testing.T) {
			cfg := &Config{ServerURL: tt.serverURL}
			if got := cfg.ServerPort(); got != tt.want {
				t.Errorf("ServerPort() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultLogFile(t *testing.T) {
	if got := DefaultLogFile(); filepath.Base(got) != "client.log" && got != "shortener-client.log" {
		t.Errorf("DefaultLogFile() = %v", got)
	}
}
