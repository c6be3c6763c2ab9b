package main

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jeffwilliams/treeviz"
	"github.com/jeffwilliams/treeviz/playback"
)

func newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <addr> [tree]",
		Short: "play a traversal and stream its events to a listener",
		Long: `send plays a traversal back and streams the visit events to a
"treeviz listen" process, which renders them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session(args[1:])
			if err != nil {
				return err
			}

			conn, err := net.Dial("tcp", args[0])
			if err != nil {
				return errors.Wrap(err, "connecting failed")
			}
			defer conn.Close()

			return send(cmd.Context(), conn, s)
		},
	}
}

func send(ctx context.Context, conn net.Conn, s *treeviz.Session) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan playback.Event)

	c := s.Controller(playback.Options{
		Pause:  conf.Pause,
		Logger: logrus.WithField("cmd", "send"),
		OnEvent: func(e playback.Event) {
			select {
			case events <- e:
			case <-ctx.Done():
			}
		},
	})

	g.Go(func() error {
		return playback.Encode(conn, s.Header(), events)
	})
	g.Go(func() error {
		defer close(events)
		c.Play(ctx)
		return c.Wait()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logrus.Infof("sent %d steps of %s", len(s.Order), s.Method)
	return nil
}
