// Package automaton generates the rows of an elementary cellular automaton
// (a "Wolfram pattern").
package automaton

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jeffwilliams/treeviz/playback"
)

// Rule is an elementary automaton rule in Wolfram numbering: bit n of the
// rule is the next state of a cell whose neighbourhood, read left, cell,
// right as a binary number, is n.
type Rule uint8

// Patterns lists the neighbourhoods in the conventional display order.
var Patterns = [8]string{"111", "110", "101", "100", "011", "010", "001", "000"}

// ParseRule parses a rule number between 0 and 255.
func ParseRule(s string) (Rule, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "rule %q", s)
	}
	return Rule(n), nil
}

// Next returns the next state of a cell.
func (r Rule) Next(left, cell, right bool) bool {
	n := 0
	if left {
		n |= 4
	}
	if cell {
		n |= 2
	}
	if right {
		n |= 1
	}
	return r&(1<<uint(n)) != 0
}

// Table returns the output for each of Patterns.
func (r Rule) Table() [8]bool {
	var t [8]bool
	for i := range Patterns {
		t[i] = r&(1<<uint(7-i)) != 0
	}
	return t
}

// Toggle flips the output of a single neighbourhood such as "110".
func (r Rule) Toggle(pattern string) (Rule, error) {
	for i, p := range Patterns {
		if p == pattern {
			return r ^ (1 << uint(7-i)), nil
		}
	}
	return r, errors.Errorf("unknown neighbourhood %q", pattern)
}

func (r Rule) String() string {
	return strconv.Itoa(int(r))
}

// FirstRow returns a row of width cells with only the middle one filled. A
// negative width gives an empty row.
func FirstRow(width int) []bool {
	if width < 0 {
		width = 0
	}
	row := make([]bool, width)
	if width > 0 {
		row[width/2] = true
	}
	return row
}

// Step computes the row following prev. Cells beyond the edges count as empty.
func Step(prev []bool, r Rule) []bool {
	row := make([]bool, len(prev))
	for i := range prev {
		left := i > 0 && prev[i-1]
		right := i < len(prev)-1 && prev[i+1]
		row[i] = r.Next(left, prev[i], right)
	}
	return row
}

// Grid is a sequence of rows, each computed from the one above it.
type Grid [][]bool

// Generate returns rows rows of width cells starting from FirstRow.
func Generate(r Rule, width, rows int) Grid {
	if rows <= 0 {
		return Grid{}
	}
	g := make(Grid, 0, rows)
	g = append(g, FirstRow(width))
	for len(g) < rows {
		g = append(g, Step(g[len(g)-1], r))
	}
	return g
}

// String draws filled cells as '#' and empty cells as '.', one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, c := range row {
			if c {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Animate passes the rows of g to fn one at a time, sleeping pause before
// each, the same way a traversal is played back.
func Animate(ctx context.Context, g Grid, sched playback.Scheduler, pause time.Duration, fn func(i int, row []bool)) error {
	if sched == nil {
		sched = playback.TimerScheduler{}
	}
	for i, row := range g {
		if err := sched.Sleep(ctx, pause); err != nil {
			return err
		}
		fn(i, row)
	}
	return nil
}
