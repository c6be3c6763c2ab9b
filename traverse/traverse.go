// Package traverse computes the order in which a depth-first traversal visits
// the nodes of an arena tree.
//
// Every function here is iterative, keeps its state on the call's own stack
// slice, and returns a fresh slice, so calls can be repeated or run
// concurrently on the same tree.
package traverse

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/jeffwilliams/treeviz/arena"
)

// Method is a depth-first traversal order.
type Method int

const (
	PreOrder Method = iota
	InOrder
	PostOrder
)

func (m Method) String() string {
	switch m {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	}
	return "unknown"
}

// Methods returns every Method in display order.
func Methods() []Method {
	return []Method{PreOrder, InOrder, PostOrder}
}

// ParseMethod parses the name of a traversal method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)) {
	case "preorder", "pre":
		return PreOrder, nil
	case "inorder", "in":
		return InOrder, nil
	case "postorder", "post":
		return PostOrder, nil
	}
	return 0, errors.Errorf("unknown traversal method %q", s)
}

// Order returns the values of t in the order visited by method m, choosing the
// binary or N-ary variant from the kind of t.
func Order(t *arena.Tree, m Method) []int {
	if t.Kind() == arena.Binary {
		switch m {
		case InOrder:
			return BinaryInOrder(t)
		case PostOrder:
			return BinaryPostOrder(t)
		default:
			return BinaryPreOrder(t)
		}
	}

	switch m {
	case InOrder:
		return NaryInOrder(t)
	case PostOrder:
		return NaryPostOrder(t)
	default:
		return NaryPreOrder(t)
	}
}

func reverse(vals []int) {
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
}
