// Package client talks to the URL-shortening backend over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lithammer/shortuuid/v4"
	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/shortener-client/internal/logger"
	"github.com/MikhailRaia/shortener-client/internal/model"
)

const userAgent = "shortener-client"

// Client calls the shortening backend. It is safe for concurrent use.
type Client struct {
	http     *resty.Client
	compress bool
}

// New creates a Client for the backend at baseURL. When compress is set,
// request bodies are sent gzip-encoded.
func New(baseURL string, timeout time.Duration, compress bool) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetTransport(logger.NewTransport(nil)).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader("X-Request-ID", shortuuid.New())
			return nil
		})

	return &Client{
		http:     httpClient,
		compress: compress,
	}
}

// Shorten posts rawURL to /shorten and returns the short URL issued by the backend.
func (c *Client) Shorten(ctx context.Context, rawURL string) (model.ShortenResult, error) {
	body, err := json.Marshal(model.ShortenRequest{URL: rawURL})
	if err != nil {
		return model.ShortenResult{}, err
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if c.compress {
		body, err = compress(body)
		if err != nil {
			return model.ShortenResult{}, fmt.Errorf("failed to compress request: %w", err)
		}
		req.SetHeader("Content-Encoding", "gzip")
	}

	resp, err := req.SetBody(body).Post("/shorten")
	if err != nil {
		return model.ShortenResult{}, transportError(err)
	}

	if !resp.IsSuccess() {
		return model.ShortenResult{}, responseError(resp)
	}

	var out model.ShortenResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return model.ShortenResult{}, &UnknownError{StatusCode: resp.StatusCode(), Err: err}
	}

	if out.ShortURL == "" {
		return model.ShortenResult{}, &UnknownError{StatusCode: resp.StatusCode(), Err: errors.New("short_url missing from response")}
	}

	log.Debug().Str("short_url", out.ShortURL).Msg("URL shortened")

	return model.ShortenResult{ShortURL: out.ShortURL}, nil
}

// Decode resolves a short code to its original URL via /decode/{code}.
func (c *Client) Decode(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrEmptyCode
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("code", code).
		Get("/decode/{code}")
	if err != nil {
		return "", transportError(err)
	}

	if !resp.IsSuccess() {
		return "", responseError(resp)
	}

	var out model.DecodeResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil || out.OriginalURL == "" {
		return "", &UnknownError{StatusCode: resp.StatusCode(), Err: err}
	}

	return out.OriginalURL, nil
}

// Ping calls the backend health endpoint and returns its message.
func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return "", transportError(err)
	}

	if !resp.IsSuccess() {
		return "", responseError(resp)
	}

	var out model.HealthResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", &UnknownError{StatusCode: resp.StatusCode(), Err: err}
	}

	return out.Message, nil
}

// transportError classifies a failed round trip. Timeouts and cancellations
// are not connection failures: the backend may well be up.
func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &UnknownError{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &UnknownError{Err: err}
	}

	return &NetworkError{Err: err}
}

func responseError(resp *resty.Response) error {
	var body model.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return &ServerError{StatusCode: resp.StatusCode(), Message: body.Error}
	}

	return &UnknownError{StatusCode: resp.StatusCode()}
}
