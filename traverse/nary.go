package traverse

import "github.com/jeffwilliams/treeviz/arena"

// NaryPreOrder visits a node, then each child subtree left to right.
func NaryPreOrder(t *arena.Tree) []int {
	out := make([]int, 0, t.Len())
	if t.Empty() {
		return out
	}

	stack := []arena.NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, t.Value(id))

		kids := t.Children(id)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return out
}

type frame struct {
	id arena.NodeID
	// next is the index of the next child to descend into.
	next int
}

// NaryInOrder visits the subtree of the first child, then the node, then the
// subtrees of the remaining children in order. For nodes with at most two
// children this is binary in-order; the node is not placed in the middle of
// its children.
func NaryInOrder(t *arena.Tree) []int {
	out := make([]int, 0, t.Len())
	if t.Empty() {
		return out
	}

	stack := []frame{{id: t.Root()}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]
		kids := t.Children(f.id)

		if len(kids) == 0 {
			out = append(out, t.Value(f.id))
			stack = stack[:top]
			continue
		}

		// Back from the first child's subtree.
		if f.next == 1 {
			out = append(out, t.Value(f.id))
		}

		if f.next < len(kids) {
			stack[top].next++
			stack = append(stack, frame{id: kids[f.next]})
			continue
		}

		stack = stack[:top]
	}
	return out
}

// NaryPostOrder visits each child subtree left to right, then the node.
//
// Splitting off the first child as NaryInOrder does gives the same sequence
// here, so there is a single post-order variant.
func NaryPostOrder(t *arena.Tree) []int {
	out := make([]int, 0, t.Len())
	if t.Empty() {
		return out
	}

	// Collect node-then-children-right-to-left and reverse.
	stack := []arena.NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, t.Value(id))
		stack = append(stack, t.Children(id)...)
	}

	reverse(out)
	return out
}
