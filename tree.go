package threadview

import "fmt"

// Tree is the canonical two-level model: conversations in display order,
// at most one of which is expanded.
type Tree struct {
	conversations []*Conversation

	// expanded caches the conversation whose flag is set. It is written
	// only by Toggle, together with the flags.
	expanded *Conversation
}

// NewTree creates a Tree with every conversation collapsed.
// Titles must be unique and conversations non-nil.
func NewTree(conversations ...*Conversation) (*Tree, error) {
	seen := make(map[string]struct{}, len(conversations))
	for i, c := range conversations {
		if c == nil {
			return nil, fmt.Errorf("conversation %d is nil: %w", i, ErrValidation)
		}
		if _, ok := seen[c.Title]; ok {
			return nil, fmt.Errorf("duplicate conversation title %q: %w", c.Title, ErrValidation)
		}
		seen[c.Title] = struct{}{}
		c.expanded = false
	}
	return &Tree{conversations: conversations}, nil
}

// Conversations returns the conversations in display order.
// The returned slice must not be modified.
func (t *Tree) Conversations() []*Conversation { return t.conversations }

// Len returns the number of conversations.
func (t *Tree) Len() int { return len(t.conversations) }

// Expanded returns the expanded conversation, or nil if none is.
func (t *Tree) Expanded() *Conversation { return t.expanded }

// Toggle flips c between expanded and collapsed. Expanding c collapses
// whichever conversation was expanded before. c must belong to t.
//
// Toggle does not reproject; callers call Project afterwards.
func (t *Tree) Toggle(c *Conversation) {
	if t.expanded == c {
		c.expanded = false
		t.expanded = nil
		return
	}
	if t.expanded != nil {
		t.expanded.expanded = false
	}
	c.expanded = true
	t.expanded = c
}

// Project returns the flat display sequence for the current expansion state.
func (t *Tree) Project() []Entry {
	return Project(t.conversations)
}
