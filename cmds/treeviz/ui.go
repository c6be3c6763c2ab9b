package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeffwilliams/treeviz"
	"github.com/jeffwilliams/treeviz/playback"
	"github.com/jeffwilliams/treeviz/traverse"
	"github.com/jeffwilliams/treeviz/ui"
)

var app views.Application

type TcellPrintContext struct {
	View  views.View
	Style tcell.Style
	X, Y  int
}

// ViewPrint prints at the context position and returns the context moved past
// the printed text.
func ViewPrint(ctx *TcellPrintContext, frmt string, args ...interface{}) (updatedCtx TcellPrintContext) {
	updatedCtx = *ctx

	str := fmt.Sprintf(frmt, args...)

	maxX, maxY := ctx.View.Size()

	// No wrapping supported, but \n starts a new line.

	x, y := ctx.X, ctx.Y

	defer func() {
		updatedCtx.X = x
		updatedCtx.Y = y
	}()

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if y >= maxY {
		return
	}

	for _, rn := range str {
		if rn == '\n' {
			x = 0
			y++
			continue
		}
		if y >= maxY {
			return
		}
		if x >= maxX {
			continue
		}
		ctx.View.SetContent(x, y, rn, nil, ctx.Style)
		x++
	}

	return
}

// PlaybackEvent carries a controller event to the UI goroutine.
type PlaybackEvent struct {
	playback.Event
	Time time.Time
}

func (e *PlaybackEvent) When() time.Time {
	return e.Time
}

var visitedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)

// TreeWidget draws a tree with its visited nodes highlighted and drives the
// playback from key presses.
type TreeWidget struct {
	view      views.View
	listeners map[tcell.EventHandler]interface{}
	ctx       context.Context
	post      func(tcell.Event) error
	quit      func()
	log       *logrus.Entry

	state    StatusSetter
	method   StatusSetter
	keys     StatusSetter
	messages StatusSetter

	// mutex protects session and ctrl, which are replaced when the method
	// changes.
	mutex   sync.Mutex
	session *treeviz.Session
	ctrl    *playback.Controller
}

func NewTreeWidget(ctx context.Context, screen tcell.Screen, s *treeviz.Session, status *StatusLine) *TreeWidget {
	w := &TreeWidget{
		listeners: make(map[tcell.EventHandler]interface{}),
		ctx:       ctx,
		post:      screen.PostEvent,
		quit:      app.Quit,
		log:       logrus.WithField("cmd", "ui"),
		session:   s,
	}

	state := &statusPart{brackets: true}
	method := &statusPart{}
	keys := &statusPart{}
	messages := &statusPart{}
	for _, p := range []StatusPart{state, method, keys, messages} {
		status.Add(p)
	}
	w.state, w.method, w.keys, w.messages = state, method, keys, messages

	w.ctrl = w.newController()
	w.updateStatus()
	return w
}

func (w *TreeWidget) newController() *playback.Controller {
	return w.session.Controller(playback.Options{
		Pause:  conf.Pause,
		Logger: w.log,
		OnEvent: func(e playback.Event) {
			if err := w.post(&PlaybackEvent{Event: e, Time: time.Now()}); err != nil {
				w.log.WithError(err).Debug("dropped draw event")
			}
		},
	})
}

func (w *TreeWidget) Draw() {
	if w.view == nil {
		return
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.view.Clear()

	ctx := TcellPrintContext{
		View:  w.view,
		Style: tcell.StyleDefault,
	}

	if w.session.Tree.Empty() {
		ViewPrint(&ctx, "(empty tree)")
		return
	}

	lines := ui.Lines(w.session.Tree)
	for y, l := range lines {
		ctx.X = 0
		ctx.Y = y
		ctx.Style = tcell.StyleDefault
		ctx = ViewPrint(&ctx, "%s", strings.Repeat("  ", l.Depth))

		visited := w.ctrl.IsVisited(l.Value)
		if visited {
			ctx.Style = visitedStyle
		}
		ViewPrint(&ctx, "%s", ui.Label(l.Value, l.Side, visited))
	}

	ctx.X = 0
	ctx.Y = len(lines) + 1
	ctx.Style = tcell.StyleDefault
	ctx = ViewPrint(&ctx, "%s:", w.session.Method)
	for _, v := range w.session.Order {
		ctx.Style = tcell.StyleDefault
		ctx = ViewPrint(&ctx, " ")
		if w.ctrl.IsVisited(v) {
			ctx.Style = visitedStyle
		}
		ctx = ViewPrint(&ctx, "%d", v)
	}
}

func (w *TreeWidget) updateStatus() {
	state := w.ctrl.State()
	w.state.SetStatus("%s", state)
	w.method.SetStatus("%s %s", w.session.Kind, w.session.Method)
	w.keys.SetStatus("%s", controls(state == playback.Playing))
}

func (w *TreeWidget) play() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	switch {
	case w.ctrl.Play(w.ctx):
		w.messages.SetStatus("")
	case w.ctrl.State() == playback.Done:
		w.messages.SetStatus("done, press r to replay")
	}
	w.updateStatus()
}

func (w *TreeWidget) replay() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.ctrl.Replay(w.ctx) {
		w.messages.SetStatus("")
	}
	w.updateStatus()
}

// nextMethod switches to the next traversal method and resets the playback.
func (w *TreeWidget) nextMethod() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.ctrl.State() == playback.Playing {
		return
	}

	methods := traverse.Methods()
	next := methods[0]
	for i, m := range methods {
		if m == w.session.Method {
			next = methods[(i+1)%len(methods)]
		}
	}

	w.session = w.session.WithMethod(next)
	w.ctrl = w.newController()
	w.messages.SetStatus("")
	w.updateStatus()
	w.log.Debugf("method %s, order %v", next, w.session.Order)
}

func (w *TreeWidget) Resize() {
}

func (w *TreeWidget) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'Q', 'q':
				w.quit()
				return true
			case 'P', 'p':
				w.play()
				return true
			case 'R', 'r':
				w.replay()
				return true
			case 'M', 'm':
				w.nextMethod()
				return true
			}
		case tcell.KeyEscape, tcell.KeyCtrlC:
			w.quit()
			return true
		}
	case *PlaybackEvent:
		w.mutex.Lock()
		// Events from a controller replaced by a method change are stale.
		if ev.Run == w.ctrl.Runs() {
			w.updateStatus()
		}
		w.mutex.Unlock()
		return true
	}

	return false
}

func (w *TreeWidget) SetView(view views.View) {
	w.view = view
}

func (w *TreeWidget) Size() (int, int) {
	if w.view == nil {
		return 0, 0
	}
	return w.view.Size()
}

func (w *TreeWidget) Watch(handler tcell.EventHandler) {
	w.listeners[handler] = nil
}

func (w *TreeWidget) Unwatch(handler tcell.EventHandler) {
	delete(w.listeners, handler)
}

func newUICmd() *cobra.Command {
	var (
		autoplay bool
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "ui [tree]",
		Short: "animate a traversal in the terminal",
		Long: `ui draws the tree and highlights each node as the traversal visits it.

Keys: p play, r replay, m next traversal method, q quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session(args)
			if err != nil {
				return err
			}

			// The screen owns the terminal, so log to a file or not at all.
			var out io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return errors.Wrap(err, "failed to open log file")
				}
				defer f.Close()
				out = f
			}
			logrus.SetOutput(out)

			return runUI(cmd.Context(), s, autoplay)
		},
	}

	cmd.Flags().BoolVar(&autoplay, "play", false, "start playing immediately")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	return cmd
}

func runUI(ctx context.Context, s *treeviz.Session, autoplay bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal initialization failed")
	}

	app.SetScreen(screen)

	panel := views.NewPanel()
	title := views.NewText()
	title.SetText(fmt.Sprintf("treeviz %s", s.Flat))
	panel.SetTitle(title)

	status := views.NewText()
	panel.SetStatus(status)

	w := NewTreeWidget(ctx, screen, s, NewStatusLine(status))
	panel.SetContent(w)

	app.SetRootWidget(panel)

	if autoplay {
		w.play()
	}

	return app.Run()
}
