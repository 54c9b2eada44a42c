package threadview_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/fwojciec/threadview"
	"github.com/stretchr/testify/assert"
)

func identity(s string) string { return s }

func TestDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to []string
		want     threadview.Changes
	}{
		{
			name: "both empty",
			want: threadview.Changes{},
		},
		{
			name: "equal",
			from: []string{"a", "b", "c"},
			to:   []string{"a", "b", "c"},
			want: threadview.Changes{},
		},
		{
			name: "insert all",
			to:   []string{"a", "b"},
			want: threadview.Changes{Inserted: []int{0, 1}},
		},
		{
			name: "remove all",
			from: []string{"a", "b"},
			want: threadview.Changes{Removed: []int{0, 1}},
		},
		{
			name: "insert in the middle",
			from: []string{"a", "d"},
			to:   []string{"a", "b", "c", "d"},
			want: threadview.Changes{Inserted: []int{1, 2}},
		},
		{
			name: "remove range and insert elsewhere",
			from: []string{"a", "x", "y", "b"},
			to:   []string{"a", "b", "z"},
			want: threadview.Changes{Removed: []int{1, 2}, Inserted: []int{2}},
		},
		{
			name: "move is remove plus insert",
			from: []string{"a", "b", "c"},
			to:   []string{"c", "a", "b"},
			want: threadview.Changes{Removed: []int{2}, Inserted: []int{0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := threadview.Diff(tt.from, tt.to, identity)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, nonNil(tt.to), nonNil(threadview.Apply(tt.from, tt.to, got)))
		})
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func TestDiff_ApplyReconstructsTarget(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	randomSeq := func() []string {
		s := make([]string, rng.IntN(12))
		for i := range s {
			s[i] = strconv.Itoa(rng.IntN(6))
		}
		return s
	}

	for i := range 300 {
		from, to := randomSeq(), randomSeq()
		c := threadview.Diff(from, to, identity)
		got := threadview.Apply(from, to, c)
		assert.Equal(t, nonNil(to), nonNil(got), "case %d: %v -> %v", i, from, to)

		// A shortest script never edits more than replacing everything.
		assert.LessOrEqual(t, c.Len(), len(from)+len(to), "case %d", i)
		assert.Equal(t, len(to)-len(from), len(c.Inserted)-len(c.Removed), "case %d", i)
		assert.IsIncreasing(t, c.Removed)
		assert.IsIncreasing(t, c.Inserted)
	}
}

func TestChanges(t *testing.T) {
	t.Parallel()

	assert.True(t, threadview.Changes{}.Empty())
	assert.Equal(t, 0, threadview.Changes{}.Len())

	c := threadview.Changes{Removed: []int{1, 2}, Inserted: []int{2}}
	assert.False(t, c.Empty())
	assert.Equal(t, 3, c.Len())
}

// TestDiffEntries_Scenarios walks the expand/collapse sequence on
// [P1(m1, m2), P2(m3)].
func TestDiffEntries_Scenarios(t *testing.T) {
	t.Parallel()

	tree, p1, p2 := scenarioTree(t)

	// Nothing expanded.
	s1 := tree.Project()
	assert.Equal(t, []string{"c:P1", "c:P2"}, keysOf(s1))

	// Expand P1.
	tree.Toggle(p1)
	s2 := tree.Project()
	assert.Equal(t, []string{"c:P1", "m:m1", "m:m2", "c:P2"}, keysOf(s2))
	c := threadview.DiffEntries(s1, s2)
	assert.Empty(t, c.Removed)
	assert.Equal(t, []int{1, 2}, c.Inserted)
	assert.Equal(t, keysOf(s2), keysOf(threadview.Apply(s1, s2, c)))

	// Expand P2, collapsing P1.
	tree.Toggle(p2)
	s3 := tree.Project()
	assert.Equal(t, []string{"c:P1", "c:P2", "m:m3"}, keysOf(s3))
	c = threadview.DiffEntries(s2, s3)
	assert.Equal(t, []int{1, 2}, c.Removed)
	assert.Equal(t, []int{2}, c.Inserted)
	assert.Equal(t, keysOf(s3), keysOf(threadview.Apply(s2, s3, c)))

	// Collapse P2.
	tree.Toggle(p2)
	s4 := tree.Project()
	assert.Equal(t, keysOf(s1), keysOf(s4))
	c = threadview.DiffEntries(s3, s4)
	assert.Equal(t, []int{2}, c.Removed)
	assert.Empty(t, c.Inserted)
}

func TestDiffEntries_ConversationRowsNeverChange(t *testing.T) {
	t.Parallel()

	convs := []*threadview.Conversation{
		threadview.NewConversation("a", "a1", "a2", "a3"),
		threadview.NewConversation("b", "b1"),
		threadview.NewConversation("c"),
		threadview.NewConversation("d", "d1", "d2"),
	}
	tree, err := threadview.NewTree(convs...)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(3, 5))
	prev := tree.Project()
	for range 100 {
		tree.Toggle(convs[rng.IntN(len(convs))])
		next := tree.Project()
		c := threadview.DiffEntries(prev, next)
		for _, i := range c.Removed {
			assert.IsType(t, threadview.MessageEntry{}, prev[i])
		}
		for _, i := range c.Inserted {
			assert.IsType(t, threadview.MessageEntry{}, next[i])
		}
		prev = next
	}
}
