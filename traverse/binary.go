package traverse

import "github.com/jeffwilliams/treeviz/arena"

// BinaryPreOrder visits a node, then its left subtree, then its right subtree.
func BinaryPreOrder(t *arena.Tree) []int {
	out := make([]int, 0, t.Len())
	if t.Empty() {
		return out
	}

	stack := []arena.NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Node(id)
		out = append(out, n.Value)

		// Right goes on first so that left is popped first.
		if n.Right != arena.None {
			stack = append(stack, n.Right)
		}
		if n.Left != arena.None {
			stack = append(stack, n.Left)
		}
	}
	return out
}

// BinaryInOrder visits the left subtree, then the node, then the right subtree.
func BinaryInOrder(t *arena.Tree) []int {
	out := make([]int, 0, t.Len())

	var stack []arena.NodeID
	cur := t.Root()
	for cur != arena.None || len(stack) > 0 {
		if cur != arena.None {
			stack = append(stack, cur)
			cur = t.Node(cur).Left
			continue
		}

		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Node(cur)
		out = append(out, n.Value)
		cur = n.Right
	}
	return out
}

// BinaryPostOrder visits the left subtree, then the right subtree, then the node.
//
// The nodes are collected node-right-left and the result reversed.
func BinaryPostOrder(t *arena.Tree) []int {
	out := make([]int, 0, t.Len())
	if t.Empty() {
		return out
	}

	stack := []arena.NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Node(id)
		out = append(out, n.Value)

		if n.Left != arena.None {
			stack = append(stack, n.Left)
		}
		if n.Right != arena.None {
			stack = append(stack, n.Right)
		}
	}

	reverse(out)
	return out
}
