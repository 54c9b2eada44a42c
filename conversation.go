package threadview

// Conversation groups an ordered list of messages under a title.
// The title identifies the conversation; the message list never changes
// after construction. The expanded flag is owned by Tree.
type Conversation struct {
	Title    string
	Messages []*Message

	expanded bool
}

// NewConversation creates a collapsed Conversation holding one message
// per content string, in order.
func NewConversation(title string, contents ...string) *Conversation {
	msgs := make([]*Message, len(contents))
	for i, c := range contents {
		msgs[i] = NewMessage(c)
	}
	return &Conversation{Title: title, Messages: msgs}
}

// Expanded reports whether the conversation's messages are shown.
func (c *Conversation) Expanded() bool { return c.expanded }
