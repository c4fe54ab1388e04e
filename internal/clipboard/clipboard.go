// Package clipboard copies text to the system clipboard, falling back to the
// OSC 52 terminal escape when no clipboard utility is available.
package clipboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	sysclip "github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
)

var errUnsupported = errors.New("no clipboard utility available")

// Clipboard writes text to the system clipboard.
type Clipboard struct {
	primary  func(text string) error
	terminal io.Writer
}

// New returns a Clipboard backed by the platform clipboard. terminal receives
// the OSC 52 sequence when the platform clipboard fails.
func New(terminal io.Writer) *Clipboard {
	primary := sysclip.WriteAll
	if sysclip.Unsupported {
		primary = func(string) error { return errUnsupported }
	}

	return &Clipboard{
		primary:  primary,
		terminal: terminal,
	}
}

// Copy puts text on the clipboard.
func (c *Clipboard) Copy(text string) error {
	err := c.primary(text)
	if err == nil {
		return nil
	}

	log.Debug().Err(err).Msg("System clipboard failed, using OSC 52")

	if c.terminal == nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	if _, err := io.WriteString(c.terminal, osc52(text)); err != nil {
		return fmt.Errorf("copy to clipboard via terminal: %w", err)
	}

	return nil
}

// osc52 encodes text as an OSC 52 "set clipboard" sequence.
func osc52(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
}
