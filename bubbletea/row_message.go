package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/threadview"
)

var _ Row = (*MessageRow)(nil)

// messageIndent lines messages up under the conversation title.
const messageIndent = "    "

// MessageRow renders one message of an expanded conversation, indented,
// without a separator.
type MessageRow struct {
	message *threadview.Message
	styles  Styles
}

// NewMessageRow creates a MessageRow.
func NewMessageRow(m *threadview.Message, styles Styles) *MessageRow {
	return &MessageRow{message: m, styles: styles}
}

func (r *MessageRow) Height() int { return MessageRowHeight }

func (r *MessageRow) View(width int, state RowState) string {
	style := r.styles.Message
	if state.Fading {
		style = r.styles.Fading
	}
	text := truncate(messageIndent+"✉ "+r.message.Content, width)

	lineStyle := lipgloss.NewStyle().Width(width)
	if state.Selected {
		lineStyle = lineStyle.Inherit(r.styles.Cursor)
	}
	return lineStyle.Render(style.Render(text))
}
