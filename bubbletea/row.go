package bubbletea

import "github.com/fwojciec/threadview"

// Fixed row heights in terminal lines. Conversation rows are taller than
// message rows: a padding line, the title, and a bottom border.
const (
	ConversationRowHeight = 3
	MessageRowHeight      = 1
)

// Row renders one projected entry.
// View takes the width so the root model controls layout
// and rows are testable in isolation.
type Row interface {
	View(width int, state RowState) string
	Height() int
}

// RowState carries per-render presentation flags.
type RowState struct {
	Selected bool // Row is under the cursor.
	Fading   bool // Row is being inserted or removed.
}

// NewRow returns the Row for an entry.
func NewRow(e threadview.Entry, styles Styles) Row {
	switch e := e.(type) {
	case threadview.ConversationEntry:
		return NewConversationRow(e.Conversation, styles)
	case threadview.MessageEntry:
		return NewMessageRow(e.Message, styles)
	default:
		panic("bubbletea: unknown entry type")
	}
}

// rowHeight is NewRow(e, styles).Height() without building the row.
func rowHeight(e threadview.Entry) int {
	if _, ok := e.(threadview.ConversationEntry); ok {
		return ConversationRowHeight
	}
	return MessageRowHeight
}
