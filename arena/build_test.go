package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Flat {
	t.Helper()
	flat, err := ParseFlat(s)
	require.NoError(t, err)
	return flat
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		flat string
		kind Kind
		exp  string
	}{
		{"Empty", "[]", Nary, "()"},
		{"AllNull", "[null, null, null]", Binary, "()"},
		{"LeadingNull", "[null, 1, 2]", Nary, "()"},
		{"SingleNary", "[7]", Nary, "7"},
		{"SingleBinary", "[7]", Binary, "7"},
		{"NaryLevelOrder", "[1, null, 3, 2, 4, null, 5, 6]", Nary, "1(3(5 6) 2 4)"},
		{"NaryDisplayTree", "[2, null, 1, 4, null, null, 3, 5]", Nary, "2(1 4(3 5))"},
		{"BinaryFill", "[1, null, 2, 3, null, 4, 5]", Binary, "1(2(4 5) 3)"},
		{"BinarySkipsToRightSubtree", "[1, null, 2, 3, null, null, 4]", Binary, "1(2 3(4))"},
		{"BinaryOverflowAdvances", "[1, null, 2, 3, 4]", Binary, "1(2(4) 3)"},
		{"RootSiblingsBecomeChildren", "[1, 2, 3]", Nary, "1(2 3)"},
		{"TrailingNulls", "[1, null, 2, null, null, null, null]", Nary, "1(2)"},
		{"ExhaustedFrontierDrops", "[1, null, null, 5, 6]", Nary, "1"},
		{"ZeroIsAValue", "[0, null, 1]", Binary, "0(1)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := Build(mustParse(t, tc.flat), tc.kind)
			assert.Equal(t, tc.exp, tr.String())
			assert.Equal(t, tc.kind, tr.Kind())
		})
	}
}

func TestBuildLinksParents(t *testing.T) {
	tr := Build(mustParse(t, "[2, null, 1, 4, null, null, 3, 5]"), Nary)

	root := tr.Root()
	require.NotEqual(t, None, root)
	assert.Equal(t, None, tr.Node(root).Parent)

	kids := tr.Children(root)
	require.Len(t, kids, 2)
	assert.Equal(t, 1, tr.Value(kids[0]))
	assert.Equal(t, 4, tr.Value(kids[1]))

	grand := tr.Children(kids[1])
	require.Len(t, grand, 2)
	assert.Equal(t, []int{3, 5}, []int{tr.Value(grand[0]), tr.Value(grand[1])})
	for _, g := range grand {
		assert.Equal(t, kids[1], tr.Node(g).Parent)
	}
}

func TestBuildBinarySlots(t *testing.T) {
	tr := Build(mustParse(t, "[1, null, 2, 3, null, 4]"), Binary)

	root := tr.Node(tr.Root())
	require.NotEqual(t, None, root.Left)
	require.NotEqual(t, None, root.Right)
	assert.Equal(t, 2, tr.Value(root.Left))
	assert.Equal(t, 3, tr.Value(root.Right))

	left := tr.Node(root.Left)
	assert.Equal(t, 4, tr.Value(left.Left))
	assert.Equal(t, None, left.Right)
	assert.Empty(t, root.Children)
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		flat string
		kind Kind
	}{
		{"Nary", "[1, null, 3, 2, 4, null, 5, 6]", Nary},
		{"NaryDeep", "[2, null, 1, 4, null, null, 3, 5]", Nary},
		{"Binary", "[1, null, 2, 3, null, 4, 5]", Binary},
		{"BinaryWithGap", "[1, null, 2, 3, null, null, 4]", Binary},
		{"Single", "[9]", Binary},
		{"Empty", "[]", Nary},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flat := mustParse(t, tc.flat)
			got := Flatten(Build(flat, tc.kind))
			assert.Equal(t, flat.Trim().String(), got.String())
		})
	}
}

func TestFlattenRoundTripPreservesShape(t *testing.T) {
	inputs := []string{
		"[1, 2, 3]",
		"[1, null, 2, 3, 4]",
		"[1, null, 2, null, null, null, 3]",
		"[5, null, 4, null, 3, null, 2, null, 1]",
		"[1, null, null, 5, 6]",
		"[null]",
		"[0, null, 1, 2, 3, 4, null, 5]",
	}

	for _, kind := range []Kind{Binary, Nary} {
		for _, in := range inputs {
			t.Run(kind.String()+in, func(t *testing.T) {
				first := Build(mustParse(t, in), kind)
				second := Build(Flatten(first), kind)
				assert.Equal(t, first.String(), second.String())
				assert.Equal(t, first.Len(), second.Len())
			})
		}
	}
}

func TestHandle(t *testing.T) {
	tr := Build(mustParse(t, "[1, null, 2, 3, null, null, 4]"), Binary)

	root := tr.Handle(tr.Root())
	require.NotNil(t, root)
	assert.Nil(t, root.GetParent())
	assert.Equal(t, 2, root.NumChildren())

	right := root.GetChild(1).(Handle)
	assert.Equal(t, 3, right.Value())
	assert.Equal(t, 2, right.NumChildren())
	assert.Equal(t, 4, right.GetChild(0).(Handle).Value())
	assert.Nil(t, right.GetChild(1))
	assert.Equal(t, root, right.GetParent())

	assert.Nil(t, New(Nary).Handle(None))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Build(mustParse(t, "[1, null, 2, 3]"), Nary)))
	assert.NoError(t, Validate(New(Binary)))

	err := Validate(Build(mustParse(t, "[1, null, 2, 1, null, 2, 2]"), Nary))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 1 appears more than once")
	assert.Contains(t, err.Error(), "value 2 appears more than once")
}

func TestParseFlat(t *testing.T) {
	for _, in := range []string{"[1, null, 3]", "1 null 3", "1,nil,3", " [1,NULL,3] "} {
		flat, err := ParseFlat(in)
		require.NoError(t, err, in)
		assert.Equal(t, Flat{V(1), Null, V(3)}, flat, in)
	}

	_, err := ParseFlat("[1, x]")
	assert.Error(t, err)

	flat, err := ParseFlat("[]")
	require.NoError(t, err)
	assert.Empty(t, flat)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Binary")
	require.NoError(t, err)
	assert.Equal(t, Binary, k)

	k, err = ParseKind("n-ary")
	require.NoError(t, err)
	assert.Equal(t, Nary, k)

	_, err = ParseKind("ternary")
	assert.Error(t, err)
}
