package main

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeffwilliams/treeviz"
	"github.com/jeffwilliams/treeviz/playback"
	"github.com/jeffwilliams/treeviz/ui"
)

const defaultAddr = ":7570"

func newListenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen [addr]",
		Short: "accept one playback stream and print each step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := defaultAddr
			if len(args) > 0 {
				addr = args[0]
			}
			return listen(cmd.Context(), addr, cmd.OutOrStdout())
		},
	}
}

func listen(ctx context.Context, addr string, out io.Writer) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "listening failed")
	}
	logrus.Infof("waiting for a stream on %s", listener.Addr())

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	conn, err := listener.Accept()
	listener.Close()
	if err != nil {
		return errors.Wrap(err, "accept failed")
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	return show(ctx, conn, out)
}

// show prints the tree described by the stream header and redraws it as the
// visit events arrive.
func show(ctx context.Context, conn io.Reader, out io.Writer) error {
	header, events, errs := playback.Decode(ctx, conn)
	s, err := treeviz.FromHeader(header)
	if err != nil {
		// A header that failed to decode leaves its error waiting on errs.
		select {
		case derr := <-errs:
			if derr != nil {
				return derr
			}
		default:
		}
		return err
	}
	logrus.Debugf("receiving %s of %s", s.Method, s.Tree)

	visited := map[int]bool{}
	isVisited := func(v int) bool { return visited[v] }

	for e := range events {
		switch e.Kind {
		case playback.Reset:
			visited = map[int]bool{}
			fmt.Fprint(out, ui.Text(s.Tree, nil))
		case playback.Visit:
			visited[e.Value] = true
			fmt.Fprintf(out, "\n%s\n", e)
			fmt.Fprint(out, ui.Text(s.Tree, isVisited))
		default:
			fmt.Fprintf(out, "\n%s\n", e)
		}
	}
	if err := <-errs; err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s:\n", s.Method)
	ui.OrderTable(out, s.Order, isVisited)
	return nil
}
