package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jeffwilliams/treeviz/automaton"
	"github.com/jeffwilliams/treeviz/playback"
)

type wolframOpts struct {
	rule    string
	flip    []string
	width   int
	rows    int
	animate bool
}

func newWolframCmd() *cobra.Command {
	opts := wolframOpts{}

	cmd := &cobra.Command{
		Use:   "wolfram",
		Short: "draw an elementary cellular automaton",
		Example: `  treeviz wolfram --rule 90 --rows 16
  treeviz wolfram --rule 0 --flip 100,001 --animate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.width < 0 || opts.rows < 0 {
				return errors.Errorf("width and rows must not be negative, got %d and %d", opts.width, opts.rows)
			}

			r, err := automaton.ParseRule(opts.rule)
			if err != nil {
				return err
			}
			for _, p := range opts.flip {
				if r, err = r.Toggle(strings.TrimSpace(p)); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			ruleTable(out, r)

			g := automaton.Generate(r, opts.width, opts.rows)
			if !opts.animate {
				fmt.Fprint(out, g)
				return nil
			}
			return automaton.Animate(cmd.Context(), g, playback.TimerScheduler{}, conf.Pause, func(i int, row []bool) {
				fmt.Fprint(out, automaton.Grid{row})
			})
		},
	}

	cmd.Flags().StringVarP(&opts.rule, "rule", "r", "30", "rule number, 0 to 255")
	cmd.Flags().StringSliceVar(&opts.flip, "flip", nil, "neighbourhoods whose output is toggled, e.g. 110,001")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 41, "cells per row")
	cmd.Flags().IntVar(&opts.rows, "rows", 20, "number of rows")
	cmd.Flags().BoolVarP(&opts.animate, "animate", "a", false, "draw one row per pause")
	return cmd
}

// ruleTable writes the output of the rule for each neighbourhood.
func ruleTable(w io.Writer, r automaton.Rule) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetHeader(append([]string{"rule " + r.String()}, automaton.Patterns[:]...))

	row := []string{"next"}
	for _, on := range r.Table() {
		if on {
			row = append(row, "1")
		} else {
			row = append(row, "0")
		}
	}
	table.Append(row)
	table.Render()
}
