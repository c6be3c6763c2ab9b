package arena

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Build builds a new Tree from the level-order encoding `flat`.
//
// The builder keeps a list of parents still accepting children, headed by a
// synthetic super-root that accepts exactly one child (the root). A present
// entry becomes a child of the current head; a null entry moves the head to the
// next parent. A head that can take no more children (the super-root once it
// has the root, a binary node once both slots are filled) is skipped when the
// next present entry arrives. Entries that arrive after the parent list is
// exhausted are dropped, so malformed input only ever yields a smaller tree.
func Build(flat Flat, kind Kind) *Tree {
	t := New(kind)

	// parents[0] is the super-root.
	parents := make([]NodeID, 1, len(flat)+1)
	parents[0] = None
	cur := 0

	full := func(id NodeID) bool {
		if id == None {
			return t.root != None
		}
		return t.full(id)
	}

	for _, s := range flat {
		if !s.Present {
			cur++
			continue
		}

		for cur < len(parents) && full(parents[cur]) {
			cur++
		}
		if cur >= len(parents) {
			continue
		}

		id := t.add(parents[cur], s.Value)
		parents = append(parents, id)
	}

	return t
}

// Flatten returns the canonical level-order encoding of t: the root, a null,
// then for each node in breadth-first order its children followed by a null.
// Trailing nulls are trimmed.
func Flatten(t *Tree) Flat {
	if t.Empty() {
		return Flat{}
	}

	flat := Flat{V(t.Value(t.root)), Null}

	queue := []NodeID{t.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, k := range t.Children(id) {
			flat = append(flat, V(t.Value(k)))
			queue = append(queue, k)
		}
		flat = append(flat, Null)
	}

	return flat.Trim()
}

// Validate checks that every value in t is unique. Visited state is keyed by
// value, so a tree with duplicates cannot be played back faithfully.
func Validate(t *Tree) error {
	var result *multierror.Error

	seen := make(map[int]int, t.Len())
	for _, v := range t.Values() {
		seen[v]++
		if seen[v] == 2 {
			result = multierror.Append(result, fmt.Errorf("value %d appears more than once", v))
		}
	}

	return result.ErrorOrNil()
}
