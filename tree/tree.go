package tree

type Tree interface {
	GetParent() Tree
	// GetChild returns the child in slot i. It may return nil for an absent slot;
	// binary trees expose both slots so that left and right stay distinguishable.
	GetChild(i int) Tree
	NumChildren() int
}

type WalkDirection int

const (
	Forward WalkDirection = iota
	Reverse
)

type WalkOrder int

const (
	PreOrder WalkOrder = iota
	InOrder
	PostOrder
)

func (o WalkOrder) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	}
	return "unknown"
}

// Visitor is the visitor function for a tree walk.
// If continu is false on return, the walk terminates.
type Visitor func(t Tree, depth int) (continu bool)

// Walk walks `tree` and its descendants, calling visitor for each node.
//
// `dir` specifies whether the children are walked from the last to first,
// or first to last. `order` specifies whether the parent is visited before the
// children, after them, or after the first child only. For a node with more
// than two children InOrder visits the first child's subtree, then the node,
// then the subtrees of the remaining children.
//
// Walk returns false if the visitor terminated the walk.
func Walk(tree Tree, visitor Visitor, dir WalkDirection, order WalkOrder) bool {
	return walk(tree, visitor, dir, order, 0)
}

func walk(tree Tree, visitor Visitor, dir WalkDirection, order WalkOrder, depth int) bool {
	if tree == nil {
		return true
	}

	i := 0
	inc := 1
	end := tree.NumChildren()

	if dir == Reverse {
		i = end - 1
		inc = -1
		end = -1
	}

	if order == PreOrder {
		if !visitor(tree, depth) {
			return false
		}
	}

	// A node with no child slots is its own in-order position.
	if order == InOrder && tree.NumChildren() == 0 {
		return visitor(tree, depth)
	}

	first := true
	for ; i != end; i += inc {
		ch := tree.GetChild(i)
		if !walk(ch, visitor, dir, order, depth+1) {
			return false
		}

		if first && order == InOrder {
			if !visitor(tree, depth) {
				return false
			}
		}
		first = false
	}

	if order == PostOrder {
		return visitor(tree, depth)
	}
	return true
}

// Depth returns the number of ancestors of `tree`.
func Depth(tree Tree) int {
	d := 0
	for p := tree.GetParent(); p != nil; p = p.GetParent() {
		d++
	}
	return d
}

// Count returns the number of nodes in the subtree rooted at `tree`.
func Count(tree Tree) int {
	n := 0
	Walk(tree, func(Tree, int) bool {
		n++
		return true
	}, Forward, PreOrder)
	return n
}
