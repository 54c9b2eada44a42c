// Package demo generates the synthetic conversation data shown by the
// threadview binary.
package demo

import (
	"fmt"

	"github.com/fwojciec/threadview"
)

// Default sizes of the generated data set.
const (
	DefaultConversations = 1000
	DefaultMessages      = 5
)

// Generate returns n conversations titled "Conversation i", each holding
// perConversation messages "Message k for Conversation i" with k counted
// from 1. Negative counts are treated as zero.
func Generate(n, perConversation int) []*threadview.Conversation {
	n = max(n, 0)
	perConversation = max(perConversation, 0)

	convs := make([]*threadview.Conversation, n)
	for i := range convs {
		contents := make([]string, perConversation)
		for k := range contents {
			contents[k] = fmt.Sprintf("Message %d for Conversation %d", k+1, i)
		}
		convs[i] = threadview.NewConversation(fmt.Sprintf("Conversation %d", i), contents...)
	}
	return convs
}
