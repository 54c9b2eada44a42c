package threadview

// Message is an immutable leaf of the conversation tree.
// Two messages are the same entry when their content is equal.
type Message struct {
	Content string
}

// NewMessage creates a Message with the given content.
func NewMessage(content string) *Message {
	return &Message{Content: content}
}
