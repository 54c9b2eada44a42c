package threadview

import "slices"

// Changes is an edit script of removals and insertions only.
// Removed holds indices into the source sequence and Inserted holds
// indices into the target sequence, both ascending.
type Changes struct {
	Removed  []int
	Inserted []int
}

// Empty reports whether the script has no edits.
func (c Changes) Empty() bool { return len(c.Removed) == 0 && len(c.Inserted) == 0 }

// Len returns the number of edits.
func (c Changes) Len() int { return len(c.Removed) + len(c.Inserted) }

// Diff computes a shortest edit script turning from into to using Myers'
// algorithm. Elements are compared by key. An element that changed
// position is reported as a removal plus an insertion.
func Diff[T any](from, to []T, key func(T) string) Changes {
	a := keys(from, key)
	b := keys(to, key)
	n, m := len(a), len(b)
	if n+m == 0 {
		return Changes{}
	}

	limit := n + m
	offset := limit
	v := make([]int, 2*limit+2)
	// trace[d] is the frontier v as it stood before round d.
	var trace [][]int

	for d := 0; d <= limit; d++ {
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				return backtrack(trace, offset, n, m)
			}
		}
	}
	// Unreachable: round n+m always reaches (n, m).
	return Changes{}
}

// DiffEntries diffs two projections by EntryKey.
func DiffEntries(from, to []Entry) Changes {
	return Diff(from, to, EntryKey)
}

func backtrack(trace [][]int, offset, x, y int) Changes {
	var c Changes
	for d := len(trace) - 1; d > 0; d-- {
		v := trace[d]
		k := x - y
		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK
		for x > prevX && y > prevY {
			x--
			y--
		}
		if x == prevX {
			c.Inserted = append(c.Inserted, prevY)
		} else {
			c.Removed = append(c.Removed, prevX)
		}
		x, y = prevX, prevY
	}
	slices.Reverse(c.Removed)
	slices.Reverse(c.Inserted)
	return c
}

func keys[T any](s []T, key func(T) string) []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = key(e)
	}
	return out
}

// Apply replays c against from: it drops the removed indices, then inserts
// to[i] at position i for every inserted index in ascending order.
// For c == Diff(from, to, key) the result matches to element by element.
func Apply[T any](from, to []T, c Changes) []T {
	out := make([]T, 0, len(from)-len(c.Removed)+len(c.Inserted))
	r := 0
	for i, e := range from {
		if r < len(c.Removed) && c.Removed[r] == i {
			r++
			continue
		}
		out = append(out, e)
	}
	for _, i := range c.Inserted {
		out = slices.Insert(out, i, to[i])
	}
	return out
}
