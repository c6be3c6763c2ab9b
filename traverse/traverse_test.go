package traverse

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffwilliams/treeviz/arena"
	"github.com/jeffwilliams/treeviz/tree"
)

func TestTraversals(t *testing.T) {
	var tr *arena.Tree

	datadriven.RunTest(t, "testdata/traversals", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "build":
			var kindName string
			d.ScanArgs(t, "kind", &kindName)
			kind, err := arena.ParseKind(kindName)
			require.NoError(t, err)

			flat, err := arena.ParseFlat(d.Input)
			require.NoError(t, err)

			tr = arena.Build(flat, kind)
			return tr.String() + "\n"

		case "traverse":
			methods := Methods()
			if d.HasArg("method") {
				var name string
				d.ScanArgs(t, "method", &name)
				m, err := ParseMethod(name)
				require.NoError(t, err)
				methods = []Method{m}
			}

			var b strings.Builder
			for _, m := range methods {
				fmt.Fprintf(&b, "%s: %v\n", m, Order(tr, m))
			}
			return b.String()

		default:
			return fmt.Sprintf("unknown command: %s", d.Cmd)
		}
	})
}

// reference walks the tree recursively with tree.Walk.
func reference(t *arena.Tree, m Method) []int {
	out := []int{}
	order := map[Method]tree.WalkOrder{
		PreOrder:  tree.PreOrder,
		InOrder:   tree.InOrder,
		PostOrder: tree.PostOrder,
	}[m]

	tree.Walk(t.Handle(t.Root()), func(n tree.Tree, depth int) bool {
		out = append(out, n.(arena.Handle).Value())
		return true
	}, tree.Forward, order)
	return out
}

// randomFlat returns a level-order encoding over a permutation of 1..n with
// nulls sprinkled in.
func randomFlat(rng *rand.Rand, n int) arena.Flat {
	var flat arena.Flat
	for _, v := range rng.Perm(n) {
		for rng.Intn(3) == 0 {
			flat = append(flat, arena.Null)
		}
		flat = append(flat, arena.V(v+1))
	}
	return flat
}

func TestMatchesRecursiveWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		flat := randomFlat(rng, 1+rng.Intn(30))

		for _, kind := range []arena.Kind{arena.Binary, arena.Nary} {
			tr := arena.Build(flat, kind)

			for _, m := range Methods() {
				got := Order(tr, m)
				require.Equal(t, reference(tr, m), got, "%s %s %s", kind, m, flat)

				// Every node appears exactly once.
				require.Len(t, got, tr.Len())
				assert.ElementsMatch(t, tr.Values(), got)
			}
		}
	}
}

func TestRepeatable(t *testing.T) {
	flat, err := arena.ParseFlat("[4, null, 2, 6, null, 1, 3, 5, 7]")
	require.NoError(t, err)
	tr := arena.Build(flat, arena.Binary)

	first := BinaryInOrder(tr)
	second := BinaryInOrder(tr)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, first)

	// Results are independent slices.
	first[0] = 100
	assert.Equal(t, 1, BinaryInOrder(tr)[0])
}

func TestEmptyAndSingle(t *testing.T) {
	empty := arena.New(arena.Binary)
	for _, f := range []func(*arena.Tree) []int{
		BinaryPreOrder, BinaryInOrder, BinaryPostOrder,
		NaryPreOrder, NaryInOrder, NaryPostOrder,
	} {
		got := f(empty)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}

	single := arena.Build(arena.Flat{arena.V(9)}, arena.Nary)
	assert.Equal(t, []int{9}, NaryPostOrder(single))
	assert.Equal(t, []int{9}, BinaryPostOrder(arena.Build(arena.Flat{arena.V(9)}, arena.Binary)))
}

func TestParseMethod(t *testing.T) {
	tests := map[string]Method{
		"preorder":  PreOrder,
		"Pre-Order": PreOrder,
		"in_order":  InOrder,
		"inorder":   InOrder,
		"post":      PostOrder,
		"POSTORDER": PostOrder,
	}
	for in, exp := range tests {
		m, err := ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, exp, m, in)
		// Names round-trip.
		back, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}

	_, err := ParseMethod("levelorder")
	assert.Error(t, err)
}
