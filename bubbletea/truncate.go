package bubbletea

import (
	"strings"

	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// narrow measures cell widths. Ambiguous-width runes count as one cell
// regardless of locale.
var narrow = &rw.Condition{EastAsianWidth: false}

// truncate shortens s to at most width cells, cutting on grapheme cluster
// boundaries and marking the cut with an ellipsis. uniseg finds the
// clusters; runewidth measures them.
func truncate(s string, width int) string {
	if narrow.StringWidth(s) <= width {
		return s
	}
	limit := width - narrow.StringWidth(ellipsis)
	if limit < 0 {
		return ""
	}

	var (
		b     strings.Builder
		used  int
		state = -1
		rest  = s
	)
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := narrow.StringWidth(cluster)
		if used+w > limit {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteString(ellipsis)
	return b.String()
}
