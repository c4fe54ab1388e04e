package client

import (
	"errors"
	"fmt"
)

// ErrEmptyCode is returned by Decode when no short code is given.
var ErrEmptyCode = errors.New("short code is required")

// NetworkError is a connection-level failure: the backend could not be reached.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response carrying a structured error message.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}

// UnknownError covers every other failure: timeouts, non-2xx responses without
// a message and malformed success bodies.
type UnknownError struct {
	StatusCode int
	Err        error
}

func (e *UnknownError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unexpected response (status %d)", e.StatusCode)
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("unexpected response (status %d): %v", e.StatusCode, e.Err)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}
