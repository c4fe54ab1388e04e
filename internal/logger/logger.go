package logger

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger initializes the default zerolog logger for the application.
// An unknown level falls back to info.
func InitLogger(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}

// Output returns the log destination: a rotating file when path is set,
// stderr otherwise. The terminal view owns stdout, so logs never go there.
func Output(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

// Transport logs basic request/response metadata for each outgoing HTTP call.
type Transport struct {
	next http.RoundTripper
}

// NewTransport wraps next; a nil next means http.DefaultTransport.
func NewTransport(next http.RoundTripper) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{next: next}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Warn().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", req.Header.Get("X-Request-ID")).
			Dur("duration", duration).
			Msg("Request failed")
		return nil, err
	}

	log.Info().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Dur("duration", duration).
		Msg("Request sent")

	log.Info().
		Int("status", resp.StatusCode).
		Int64("size", resp.ContentLength).
		Msg("Response received")

	return resp, nil
}
