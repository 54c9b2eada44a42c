// Package bubbletea provides a Bubble Tea TUI for browsing a
// threadview.Tree.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// AnimationMsg advances the row transition identified by Seq.
// Ticks from a superseded transition are ignored.
type AnimationMsg struct {
	Seq int
}

// ScrollToBottomMsg scrolls the list to its last row without moving the
// cursor. It is scheduled once after the first layout.
type ScrollToBottomMsg struct{}
