package bubbletea

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/threadview"
	"github.com/rivo/uniseg"
)

var _ Row = (*ConversationRow)(nil)

// ConversationRow renders a conversation header with an expand indicator,
// the title, the message count, and a separator border underneath.
type ConversationRow struct {
	conversation *threadview.Conversation
	styles       Styles
}

// NewConversationRow creates a ConversationRow.
func NewConversationRow(c *threadview.Conversation, styles Styles) *ConversationRow {
	return &ConversationRow{conversation: c, styles: styles}
}

func (r *ConversationRow) Height() int { return ConversationRowHeight }

func (r *ConversationRow) View(width int, state RowState) string {
	indicator := "▶"
	if r.conversation.Expanded() {
		indicator = "▼"
	}
	count := fmt.Sprintf(" (%d)", len(r.conversation.Messages))

	indicatorStyle, titleStyle, countStyle := r.styles.Indicator, r.styles.Conversation, r.styles.Muted
	borderColor := r.styles.Separator.GetForeground()
	if state.Fading {
		indicatorStyle, titleStyle, countStyle = r.styles.Fading, r.styles.Fading, r.styles.Fading
		borderColor = r.styles.Fading.GetForeground()
	}

	// "▶ " takes two cells.
	avail := width - 2 - uniseg.StringWidth(count)
	var line string
	if avail > 0 {
		line = indicatorStyle.Render(indicator) + " " +
			titleStyle.Render(truncate(r.conversation.Title, avail)) +
			countStyle.Render(count)
	} else {
		line = titleStyle.Render(truncate(indicator+" "+r.conversation.Title, width))
	}

	lineStyle := lipgloss.NewStyle().Width(width)
	if state.Selected {
		lineStyle = lineStyle.Inherit(r.styles.Cursor)
	}

	return lipgloss.NewStyle().
		PaddingTop(1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(borderColor).
		Render(lineStyle.Render(line))
}
