package threadview

// Entry is a sealed interface representing one row of the flat projection.
// The unexported marker method prevents external implementations.
type Entry interface {
	isEntry()
}

// ConversationEntry is the row for a conversation header.
type ConversationEntry struct {
	Conversation *Conversation
}

func (ConversationEntry) isEntry() {}

// MessageEntry is the row for a message of an expanded conversation.
// Conversation is the owner, kept for rendering; it does not take part
// in the entry's identity.
type MessageEntry struct {
	Conversation *Conversation
	Message      *Message
}

func (MessageEntry) isEntry() {}

// Interface compliance checks.
var (
	_ Entry = ConversationEntry{}
	_ Entry = MessageEntry{}
)

// Key prefixes keep conversation and message keys disjoint.
const (
	conversationKeyPrefix = "c:"
	messageKeyPrefix      = "m:"
)

// EntryKey returns the identity of an entry: conversations by title,
// messages by content.
func EntryKey(e Entry) string {
	switch e := e.(type) {
	case ConversationEntry:
		return conversationKeyPrefix + e.Conversation.Title
	case MessageEntry:
		return messageKeyPrefix + e.Message.Content
	default:
		return ""
	}
}

// Project walks conversations in order and returns one ConversationEntry
// per conversation, followed by a MessageEntry for each of its messages
// when the conversation is expanded.
func Project(conversations []*Conversation) []Entry {
	n := len(conversations)
	for _, c := range conversations {
		if c.expanded {
			n += len(c.Messages)
		}
	}
	entries := make([]Entry, 0, n)
	for _, c := range conversations {
		entries = append(entries, ConversationEntry{Conversation: c})
		if !c.expanded {
			continue
		}
		for _, m := range c.Messages {
			entries = append(entries, MessageEntry{Conversation: c, Message: m})
		}
	}
	return entries
}
