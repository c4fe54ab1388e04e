package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/shortener-client/internal/browser"
	"github.com/MikhailRaia/shortener-client/internal/client"
	"github.com/MikhailRaia/shortener-client/internal/clipboard"
	"github.com/MikhailRaia/shortener-client/internal/config"
	"github.com/MikhailRaia/shortener-client/internal/form"
	"github.com/MikhailRaia/shortener-client/internal/tui"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
)

type App struct {
	config *config.Config
	client *client.Client
	form   *form.Form
	stdout io.Writer
	stderr io.Writer
}

// NewApp wires the client, clipboard and browser into a form. The clipboard
// falls back to OSC 52 sequences written to stderr.
func NewApp(cfg *config.Config, stdout, stderr io.Writer) *App {
	c := client.New(cfg.ServerURL, cfg.RequestTimeout, cfg.GzipRequests)

	return &App{
		config: cfg,
		client: c,
		form:   form.New(c, clipboard.New(stderr), browser.New(), cfg.ServerPort()),
		stdout: stdout,
		stderr: stderr,
	}
}

// Run starts the interactive view when args is empty, otherwise it runs the
// named command once.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.form.Close()

	if len(args) == 0 {
		return a.runInteractive(ctx)
	}

	switch args[0] {
	case "shorten":
		if len(args) != 2 {
			return fmt.Errorf("shorten URL: %w", ErrUsage)
		}
		return a.shorten(ctx, args[1])
	case "decode":
		if len(args) != 2 {
			return fmt.Errorf("decode CODE: %w", ErrUsage)
		}
		return a.decode(ctx, args[1])
	case "ping":
		if len(args) != 1 {
			return fmt.Errorf("ping: %w", ErrUsage)
		}
		return a.ping(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}

func (a *App) runInteractive(ctx context.Context) error {
	log.Info().Str("server", a.config.ServerURL).Msg("Starting interactive view")

	p := tea.NewProgram(tui.New(ctx, a.form), tea.WithContext(ctx), tea.WithOutput(a.stdout))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (a *App) shorten(ctx context.Context, rawURL string) error {
	a.form.SetInput(rawURL)
	if err := a.form.Submit(ctx); err != nil {
		fmt.Fprintln(a.stderr, a.form.State().Message)
		return err
	}

	fmt.Fprintln(a.stdout, a.form.State().ShortURL)

	if a.config.CopyResult {
		if err := a.form.Copy(); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		fmt.Fprintln(a.stderr, "Copied!")
	}

	if a.config.OpenResult {
		if err := a.form.Open(); err != nil {
			return fmt.Errorf("open: %w", err)
		}
	}

	return nil
}

func (a *App) decode(ctx context.Context, code string) error {
	originalURL, err := a.client.Decode(ctx, code)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, originalURL)
	return nil
}

func (a *App) ping(ctx context.Context) error {
	message, err := a.client.Ping(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, message)
	return nil
}
