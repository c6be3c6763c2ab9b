package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffwilliams/treeviz/arena"
)

func build(t *testing.T, s string, kind arena.Kind) *arena.Tree {
	flat, err := arena.ParseFlat(s)
	require.NoError(t, err)
	return arena.Build(flat, kind)
}

func TestLines(t *testing.T) {
	tr := build(t, "[1, null, 2, 3, null, 4]", arena.Binary)

	lines := Lines(tr)
	require.Len(t, lines, 4)

	exp := []struct {
		value, depth int
		side         string
	}{
		{1, 0, ""},
		{2, 1, "L"},
		{4, 2, "L"},
		{3, 1, "R"},
	}
	for i, e := range exp {
		assert.Equal(t, e.value, lines[i].Value, "line %d", i)
		assert.Equal(t, e.depth, lines[i].Depth, "line %d", i)
		assert.Equal(t, e.side, lines[i].Side, "line %d", i)
	}

	assert.Empty(t, Lines(arena.New(arena.Nary)))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "5", Label(5, "", false))
	assert.Equal(t, "[5]", Label(5, "", true))
	assert.Equal(t, "R: [5]", Label(5, "R", true))
}

func TestText(t *testing.T) {
	tr := build(t, "[2, null, 1, 4, null, null, 3, 5]", arena.Nary)

	out := Text(tr, func(v int) bool { return v == 4 || v == 2 })
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "[2]", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " 1"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], " [4]"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], " 3"), lines[3])
	assert.True(t, strings.HasSuffix(lines[4], " 5"), lines[4])

	assert.Equal(t, "(empty)\n", Text(arena.New(arena.Binary), nil))
	assert.Equal(t, "7", strings.TrimSpace(Text(build(t, "[7]", arena.Binary), nil)))
}

func TestOrderTable(t *testing.T) {
	var buf bytes.Buffer
	OrderTable(&buf, []int{2, 1, 4}, func(v int) bool { return v == 2 })

	out := buf.String()
	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "VALUE")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, three rows.
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"1", "2", "true"}, cells(lines[2]))
	assert.Equal(t, []string{"3", "4", "false"}, cells(lines[4]))
}

func cells(line string) []string {
	var out []string
	for _, f := range strings.Split(line, "|") {
		out = append(out, strings.TrimSpace(f))
	}
	return out
}
