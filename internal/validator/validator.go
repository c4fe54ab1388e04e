// Package validator checks user input before it is sent to the backend.
package validator

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const maxPort = 65535

var (
	// ErrEmpty is returned for empty or whitespace-only input.
	ErrEmpty = errors.New("please enter a URL")
	// ErrMalformed is returned when input is not an absolute http(s) URL.
	ErrMalformed = errors.New("please enter a valid URL starting with http:// or https://")
)

// Validate reports whether input is an absolute URL whose scheme is exactly
// http or https, with a host name and, if given, a port in range. The input
// is not normalized.
func Validate(input string) bool {
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return false
	}

	u, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return false
	}

	if !u.IsAbs() || u.Hostname() == "" {
		return false
	}

	return validPort(u.Port())
}

func validPort(port string) bool {
	if port == "" {
		return true
	}

	n, err := strconv.Atoi(port)
	return err == nil && n >= 0 && n <= maxPort
}

// Check classifies input, returning ErrEmpty, ErrMalformed or nil.
func Check(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmpty
	}

	if !Validate(input) {
		return ErrMalformed
	}

	return nil
}
