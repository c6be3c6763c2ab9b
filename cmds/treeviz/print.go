package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeffwilliams/treeviz"
	"github.com/jeffwilliams/treeviz/playback"
	"github.com/jeffwilliams/treeviz/ui"
)

func newPrintCmd() *cobra.Command {
	var animate bool

	cmd := &cobra.Command{
		Use:   "print [tree]",
		Short: "print a tree and its traversal order",
		Example: `  treeviz print "[1, null, 3, 2, 4, null, 5, 6]"
  treeviz print -k binary -m inorder --animate 4 2 6 1 3 5 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !animate {
				fmt.Fprint(out, ui.Text(s.Tree, nil))
				fmt.Fprintf(out, "\n%s:\n", s.Method)
				ui.OrderTable(out, s.Order, nil)
				return nil
			}
			return printAnimated(cmd, s, out)
		},
	}

	cmd.Flags().BoolVarP(&animate, "animate", "a", false, "redraw the tree after each visit")
	return cmd
}

func printAnimated(cmd *cobra.Command, s *treeviz.Session, out io.Writer) error {
	log := logrus.WithField("cmd", "print")

	var c *playback.Controller
	c = s.Controller(playback.Options{
		Pause:  conf.Pause,
		Logger: log,
		OnEvent: func(e playback.Event) {
			switch e.Kind {
			case playback.Reset:
				fmt.Fprint(out, ui.Text(s.Tree, nil))
			case playback.Visit:
				fmt.Fprintf(out, "\n%s\n", e)
				fmt.Fprint(out, ui.Text(s.Tree, c.IsVisited))
			}
		},
	})

	c.Play(cmd.Context())
	if err := c.Wait(); err != nil {
		log.WithError(err).Warn("playback interrupted")
	}

	fmt.Fprintf(out, "\n%s:\n", s.Method)
	ui.OrderTable(out, s.Order, c.IsVisited)
	return nil
}
