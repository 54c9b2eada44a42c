package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/threadview"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Conversation lipgloss.Style
	Message      lipgloss.Style
	Indicator    lipgloss.Style
	Separator    lipgloss.Style
	Cursor       lipgloss.Style
	Muted        lipgloss.Style
	Fading       lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t threadview.Theme) Styles {
	return Styles{
		Conversation: lipgloss.NewStyle().Foreground(ansiColor(t.Conversation)).Bold(true),
		Message:      lipgloss.NewStyle().Foreground(ansiColor(t.Message)),
		Indicator:    lipgloss.NewStyle().Foreground(ansiColor(t.Accent)),
		Separator:    lipgloss.NewStyle().Foreground(ansiColor(t.Separator)),
		Cursor:       lipgloss.NewStyle().Background(ansiColor(t.Cursor)),
		Muted:        lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Fading:       lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
