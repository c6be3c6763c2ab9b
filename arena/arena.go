// Package arena holds trees whose nodes live in a single slice and refer to
// each other by index.
package arena

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/jeffwilliams/treeviz/tree"
)

// Kind selects the shape of a tree.
type Kind int

const (
	Binary Kind = iota
	Nary
)

func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Nary:
		return "nary"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses the name of a tree kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin", "b":
		return Binary, nil
	case "nary", "n-ary", "n":
		return Nary, nil
	}
	return 0, errors.Errorf("unknown tree kind %q", s)
}

// NodeID is the index of a node within its Tree.
type NodeID int

// None marks an absent node.
const None NodeID = -1

// A node within a Tree. Binary trees use Left and Right, N-ary trees use Children.
type Node struct {
	Value    int
	Parent   NodeID
	Left     NodeID
	Right    NodeID
	Children []NodeID
}

// Tree owns every node reachable from its root.
type Tree struct {
	kind  Kind
	nodes []Node
	root  NodeID
}

// New creates a new, empty Tree.
func New(kind Kind) *Tree {
	return &Tree{kind: kind, root: None}
}

func (t *Tree) Kind() Kind {
	return t.kind
}

// Root returns the id of the root node, or None if the tree is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Empty() bool {
	return t.root == None
}

// Node returns the node with the given id. The returned node must not be modified.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

func (t *Tree) Value(id NodeID) int {
	return t.nodes[id].Value
}

// Children returns the present children of a node in stored order. For binary
// trees that is the left child, if any, followed by the right child, if any.
func (t *Tree) Children(id NodeID) []NodeID {
	n := &t.nodes[id]
	if t.kind == Nary {
		return n.Children
	}
	kids := make([]NodeID, 0, 2)
	if n.Left != None {
		kids = append(kids, n.Left)
	}
	if n.Right != None {
		kids = append(kids, n.Right)
	}
	return kids
}

// Values returns the node values in the order the nodes were created.
func (t *Tree) Values() []int {
	vals := make([]int, len(t.nodes))
	for i, n := range t.nodes {
		vals[i] = n.Value
	}
	return vals
}

// add creates a node and links it under parent. A parent of None makes it the root.
func (t *Tree) add(parent NodeID, value int) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Value: value, Parent: parent, Left: None, Right: None})

	if parent == None {
		t.root = id
		return id
	}

	p := &t.nodes[parent]
	switch {
	case t.kind == Nary:
		p.Children = append(p.Children, id)
	case p.Left == None:
		p.Left = id
	default:
		p.Right = id
	}
	return id
}

// full reports whether the node can accept no further children.
func (t *Tree) full(id NodeID) bool {
	if t.kind == Nary {
		return false
	}
	n := &t.nodes[id]
	return n.Left != None && n.Right != None
}

// Handle returns an adaptor that lets the generic walks in package tree
// operate on the node. Handle(None) returns nil.
func (t *Tree) Handle(id NodeID) tree.Tree {
	if id == None {
		return nil
	}
	return Handle{t: t, ID: id}
}

// Handle is a reference to a node within a Tree.
type Handle struct {
	t  *Tree
	ID NodeID
}

func (h Handle) Value() int {
	return h.t.nodes[h.ID].Value
}

func (h Handle) GetParent() tree.Tree {
	return h.t.Handle(h.t.nodes[h.ID].Parent)
}

// GetChild returns the child in slot i. Binary nodes have two slots and
// return nil for an absent one.
func (h Handle) GetChild(i int) tree.Tree {
	n := &h.t.nodes[h.ID]
	if h.t.kind == Nary {
		return h.t.Handle(n.Children[i])
	}
	if i == 0 {
		return h.t.Handle(n.Left)
	}
	return h.t.Handle(n.Right)
}

// NumChildren is 0 for binary leaves and 2 for every other binary node.
func (h Handle) NumChildren() int {
	n := &h.t.nodes[h.ID]
	if h.t.kind == Nary {
		return len(n.Children)
	}
	if n.Left == None && n.Right == None {
		return 0
	}
	return 2
}

// String renders the tree in nested form, for example 1(2 3(4)).
func (t *Tree) String() string {
	if t.Empty() {
		return "()"
	}
	var b strings.Builder
	var write func(id NodeID)
	write = func(id NodeID) {
		fmt.Fprintf(&b, "%d", t.nodes[id].Value)
		kids := t.Children(id)
		if len(kids) == 0 {
			return
		}
		b.WriteByte('(')
		for i, k := range kids {
			if i > 0 {
				b.WriteByte(' ')
			}
			write(k)
		}
		b.WriteByte(')')
	}
	write(t.root)
	return b.String()
}
