/*
  Package ui renders arena trees and their visited state as text.
*/
package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/xlab/treeprint"

	"github.com/jeffwilliams/treeviz/arena"
	"github.com/jeffwilliams/treeviz/tree"
)

// Line is one row of an indented tree display.
type Line struct {
	ID    arena.NodeID
	Value int
	Depth int
	// Side is "L" or "R" for the children of binary nodes, otherwise empty.
	Side string
}

// Lines returns the display rows of t in pre-order.
func Lines(t *arena.Tree) []Line {
	lines := make([]Line, 0, t.Len())

	visitor := func(n tree.Tree, depth int) bool {
		h := n.(arena.Handle)
		lines = append(lines, Line{ID: h.ID, Value: h.Value(), Depth: depth, Side: side(t, h.ID)})
		return true
	}

	tree.Walk(t.Handle(t.Root()), visitor, tree.Forward, tree.PreOrder)
	return lines
}

func side(t *arena.Tree, id arena.NodeID) string {
	if t.Kind() != arena.Binary {
		return ""
	}
	parent := t.Node(id).Parent
	if parent == arena.None {
		return ""
	}
	if t.Node(parent).Left == id {
		return "L"
	}
	return "R"
}

// Label formats a node value. Visited values are bracketed.
func Label(value int, side string, visited bool) string {
	s := strconv.Itoa(value)
	if visited {
		s = "[" + s + "]"
	}
	if side != "" {
		s = side + ": " + s
	}
	return s
}

// Text draws t as a tree. A nil visited marks nothing visited.
func Text(t *arena.Tree, visited func(v int) bool) string {
	if visited == nil {
		visited = func(int) bool { return false }
	}
	if t.Empty() {
		return "(empty)\n"
	}

	label := func(id arena.NodeID) string {
		v := t.Value(id)
		return Label(v, side(t, id), visited(v))
	}

	var add func(parent treeprint.Tree, id arena.NodeID)
	add = func(parent treeprint.Tree, id arena.NodeID) {
		kids := t.Children(id)
		if len(kids) == 0 {
			parent.AddNode(label(id))
			return
		}
		branch := parent.AddBranch(label(id))
		for _, k := range kids {
			add(branch, k)
		}
	}

	root := treeprint.New()
	root.SetValue(label(t.Root()))
	for _, k := range t.Children(t.Root()) {
		add(root, k)
	}
	return root.String()
}

// OrderTable writes a table of the steps of a traversal order.
func OrderTable(w io.Writer, order []int, visited func(v int) bool) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetHeader([]string{
		"step",
		"value",
		"visited",
	})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, v := range order {
		seen := false
		if visited != nil {
			seen = visited(v)
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(v),
			fmt.Sprint(seen),
		})
	}
	table.Render()
}
