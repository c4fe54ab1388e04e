package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MikhailRaia/shortener-client/internal/form"
)

var (
	accent = lipgloss.Color("#00E2DC")
	muted  = lipgloss.Color("#6b7280")

	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	taglineStyle  = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#374151"))
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	disabledStyle = buttonStyle.Foreground(muted).BorderForeground(muted)
	copiedStyle   = buttonStyle.Foreground(lipgloss.Color("#16a34a")).BorderForeground(lipgloss.Color("#16a34a"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	footerStyle   = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(header())
	b.WriteString("\n\n")
	card := cardStyle
	if m.width > 8 {
		card = card.Width(min(m.width-4, 90))
	}
	b.WriteString(card.Render(m.card()))
	b.WriteString("\n\n")
	b.WriteString(footer())
	b.WriteString("\n")

	return b.String()
}

func header() string {
	return headerStyle.Render("URL Shortener")
}

func footer() string {
	return footerStyle.Render("enter shorten • ctrl+y copy • ctrl+o test • esc quit")
}

func (m Model) card() string {
	state := m.form.State()

	lines := []string{
		titleStyle.Render("Shorten Your URLs"),
		taglineStyle.Render("Transform long URLs into short, shareable links in seconds"),
		"",
	}

	switch state.Status {
	case form.StatusError:
		lines = append(lines, errorStyle.Render("✖ "+state.Message), "")
	case form.StatusSuccess:
		lines = append(lines, successStyle.Render("✔ "+state.Message), "")
	}

	lines = append(lines, m.input.View(), "")

	if m.pending || state.Busy() {
		lines = append(lines, disabledStyle.Render("Shortening..."))
	} else {
		lines = append(lines, buttonStyle.Render("Shorten URL"))
	}

	if state.ShortURL != "" {
		copyButton := buttonStyle.Render("Copy")
		if state.Copied {
			copyButton = copiedStyle.Render("✔ Copied!")
		}

		lines = append(lines,
			"",
			labelStyle.Render("Your shortened URL:"),
			lipgloss.JoinHorizontal(lipgloss.Center,
				state.ShortURL+"  ",
				copyButton,
				" ",
				buttonStyle.Render("Test"),
			),
		)
	}

	if m.note != "" {
		lines = append(lines, "", errorStyle.Render(m.note))
	}

	return strings.Join(lines, "\n")
}
