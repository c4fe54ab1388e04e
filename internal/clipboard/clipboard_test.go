package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestCopyPrimary(t *testing.T) {
	var copied string
	var term bytes.Buffer

	c := &Clipboard{
		primary:  func(text string) error { copied = text; return nil },
		terminal: &term,
	}

	require.NoError(t, c.Copy("https://short.ly/xyz"))
	assert.Equal(t, "https://short.ly/xyz", copied)
	assert.Empty(t, term.String())
}

func TestCopyFallback(t *testing.T) {
	var term bytes.Buffer

	c := &Clipboard{
		primary:  func(string) error { return errors.New("xclip not found") },
		terminal: &term,
	}

	require.NoError(t, c.Copy("https://short.ly/xyz"))
	assert.Equal(t, "\x1b]52;c;aHR0cHM6Ly9zaG9ydC5seS94eXo=\a", term.String())
}

func TestCopyBothFail(t *testing.T) {
	c := &Clipboard{
		primary:  func(string) error { return errors.New("xclip not found") },
		terminal: failingWriter{},
	}

	assert.Error(t, c.Copy("https://short.ly/xyz"))

	c.terminal = nil
	assert.Error(t, c.Copy("https://short.ly/xyz"))
}
