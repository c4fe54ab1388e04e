// Package form implements the shorten form: input validation, a single
// in-flight submission, and copy/open actions on the result.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/shortener-client/internal/client"
	"github.com/MikhailRaia/shortener-client/internal/model"
	"github.com/MikhailRaia/shortener-client/internal/validator"
)

// CopyAckDuration is how long the "copied" acknowledgement stays up.
const CopyAckDuration = 2 * time.Second

const (
	MsgEmpty       = "Please enter a URL"
	MsgInvalid     = "Please enter a valid URL starting with http:// or https://"
	MsgSuccess     = "URL shortened successfully!"
	MsgFailed      = "Failed to shorten URL. Please try again."
	msgUnreachable = "Unable to connect to server. Please make sure the backend is running on port %s."
)

var (
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrNoResult       = errors.New("no short URL yet")
)

type Shortener interface {
	Shorten(ctx context.Context, rawURL string) (model.ShortenResult, error)
}

type Clipboard interface {
	Copy(text string) error
}

type Opener interface {
	Open(url string) error
}

// Form owns the state of one shorten form. Methods are safe for concurrent use.
type Form struct {
	shortener   Shortener
	clipboard   Clipboard
	opener      Opener
	serverPort  string
	ackDuration time.Duration

	mu       sync.Mutex
	state    State
	ackTimer *time.Timer
	ackSeq   uint64
	onChange func()
}

// New creates a Form. serverPort is quoted in the message shown when the
// backend cannot be reached.
func New(shortener Shortener, clipboard Clipboard, opener Opener, serverPort string) *Form {
	return &Form{
		shortener:   shortener,
		clipboard:   clipboard,
		opener:      opener,
		serverPort:  serverPort,
		ackDuration: CopyAckDuration,
	}
}

// SetAckDuration changes how long the "copied" acknowledgement stays up.
func (f *Form) SetAckDuration(d time.Duration) {
	f.mu.Lock()
	f.ackDuration = d
	f.mu.Unlock()
}

// OnChange registers fn to be called after every state change, including the
// timer-driven revert of the copy acknowledgement. fn must not block.
func (f *Form) OnChange(fn func()) {
	f.mu.Lock()
	f.onChange = fn
	f.mu.Unlock()
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetInput replaces the input text. Editing after an error or a success
// dismisses the message and returns the form to idle. It reports false and
// does nothing while a submission is in flight.
func (f *Form) SetInput(input string) bool {
	f.mu.Lock()
	if f.state.Busy() {
		f.mu.Unlock()
		return false
	}

	changed := f.state.Input != input
	f.state.Input = input
	if changed && (f.state.Status == StatusError || f.state.Status == StatusSuccess) {
		f.transition(StatusIdle, "")
	}
	f.mu.Unlock()

	if changed {
		f.notify()
	}
	return true
}

// Submit validates the current input and, if valid, sends it to the backend.
// Failures are recorded in the form state and also returned.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Busy() {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}

	f.transition(StatusValidating, "")
	input := f.state.Input

	if err := validator.Check(input); err != nil {
		f.transition(StatusError, validationMessage(err))
		f.mu.Unlock()
		f.notify()
		return err
	}

	f.transition(StatusSubmitting, "")
	f.mu.Unlock()
	f.notify()

	result, err := f.shortener.Shorten(ctx, strings.TrimSpace(input))

	f.mu.Lock()
	if err != nil {
		log.Warn().Err(err).Str("url", input).Msg("Shorten failed")
		f.transition(StatusError, f.failureMessage(err))
		f.mu.Unlock()
		f.notify()
		return err
	}

	f.state.ShortURL = result.ShortURL
	f.state.Input = ""
	f.transition(StatusSuccess, MsgSuccess)
	f.mu.Unlock()
	f.notify()

	return nil
}

// Copy puts the short URL on the clipboard and raises the "copied"
// acknowledgement for CopyAckDuration. Copying again restarts the window.
func (f *Form) Copy() error {
	shortURL := f.State().ShortURL
	if shortURL == "" {
		return ErrNoResult
	}

	if err := f.clipboard.Copy(shortURL); err != nil {
		log.Warn().Err(err).Msg("Copy failed")
		return err
	}

	f.mu.Lock()
	f.state.Copied = true
	f.ackSeq++
	seq := f.ackSeq
	if f.ackTimer != nil {
		f.ackTimer.Stop()
	}
	f.ackTimer = time.AfterFunc(f.ackDuration, func() { f.revertCopied(seq) })
	f.mu.Unlock()
	f.notify()

	return nil
}

// Open launches the short URL in a new browser process.
func (f *Form) Open() error {
	shortURL := f.State().ShortURL
	if shortURL == "" {
		return ErrNoResult
	}

	return f.opener.Open(shortURL)
}

// Close stops the acknowledgement timer.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ackTimer != nil {
		f.ackTimer.Stop()
		f.ackTimer = nil
	}
}

func (f *Form) revertCopied(seq uint64) {
	f.mu.Lock()
	if seq != f.ackSeq {
		// superseded by a later copy
		f.mu.Unlock()
		return
	}
	f.state.Copied = false
	f.ackTimer = nil
	f.mu.Unlock()
	f.notify()
}

// transition must be called with mu held.
func (f *Form) transition(to Status, message string) {
	log.Debug().
		Stringer("from", f.state.Status).
		Stringer("to", to).
		Msg("Form transition")

	f.state.Status = to
	f.state.Message = message
}

func (f *Form) notify() {
	f.mu.Lock()
	fn := f.onChange
	f.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// failureMessage picks the message for a failed submission: the backend's own
// message first, then connectivity, then the generic fallback.
func (f *Form) failureMessage(err error) string {
	var serverErr *client.ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}

	var networkErr *client.NetworkError
	if errors.As(err, &networkErr) {
		return fmt.Sprintf(msgUnreachable, f.serverPort)
	}

	return MsgFailed
}

func validationMessage(err error) string {
	if errors.Is(err, validator.ErrEmpty) {
		return MsgEmpty
	}
	return MsgInvalid
}
