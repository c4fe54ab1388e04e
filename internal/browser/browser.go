// Package browser opens short URLs in the user's web browser.
package browser

import (
	"errors"
	"io"

	sysbrowser "github.com/pkg/browser"

	"github.com/MikhailRaia/shortener-client/internal/validator"
)

// ErrUnsafeURL is returned for targets that are not absolute http(s) URLs.
var ErrUnsafeURL = errors.New("refusing to open non-http(s) URL")

func init() {
	// The browser runs as its own process; keep its chatter off our terminal.
	sysbrowser.Stdout = io.Discard
	sysbrowser.Stderr = io.Discard
}

// Opener launches URLs in a new browser process.
type Opener struct {
	launch func(url string) error
}

// New returns an Opener using the platform browser.
func New() *Opener {
	return &Opener{launch: sysbrowser.OpenURL}
}

// Open opens url in a new browser window or tab. The launched browser holds
// no reference to this process.
func (o *Opener) Open(url string) error {
	if !validator.Validate(url) {
		return ErrUnsafeURL
	}

	return o.launch(url)
}
