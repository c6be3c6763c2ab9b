// Package playback turns a traversal order into a timed animation of
// visited-state updates.
package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultPause is the time spent before each node is marked visited.
const DefaultPause = 700 * time.Millisecond

// State is the state of a Controller.
type State int

const (
	Idle State = iota
	Playing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// EventKind is the type of change an Event reports.
type EventKind int

const (
	// Reset is sent when a run clears the visited state.
	Reset EventKind = iota
	// Visit is sent after a value has been marked visited.
	Visit
	// Finish is sent when the last value has been visited.
	Finish
	// Cancel is sent when a run is stopped by its context.
	Cancel
)

func (k EventKind) String() string {
	switch k {
	case Reset:
		return "reset"
	case Visit:
		return "visit"
	case Finish:
		return "finish"
	case Cancel:
		return "cancel"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a change to the visited state of a Controller.
type Event struct {
	// Run numbers the playback runs of a controller starting at 1.
	Run  int
	Kind EventKind
	// Step is the index into the order of the visited value; -1 for Reset.
	Step  int
	Value int
	// State is the controller state once the event has been applied.
	State State
}

func (e Event) String() string {
	if e.Kind == Visit {
		return fmt.Sprintf("run %d step %d: visit %d", e.Run, e.Step, e.Value)
	}
	return fmt.Sprintf("run %d: %s", e.Run, e.Kind)
}

type Options struct {
	// Pause is the time waited before each value is marked visited.
	// Zero means DefaultPause.
	Pause time.Duration
	// Scheduler defaults to TimerScheduler.
	Scheduler Scheduler
	// OnEvent, if set, is called from the run goroutine after each change.
	// It may call the read methods of the Controller.
	OnEvent func(Event)
	Logger  *logrus.Entry
}

// Controller plays a traversal order back one value at a time. At most one
// run is active at a time; while a run is playing, Play and Replay do nothing.
type Controller struct {
	opts  Options
	order []int

	// mutex protects the fields below. visited is cleared when a run starts
	// and otherwise written only by the run goroutine.
	mutex   sync.Mutex
	visited map[int]bool
	state   State
	runs    int
	done    chan struct{}
	err     error
}

// New creates an idle Controller for order. The order is copied.
func New(order []int, opts Options) *Controller {
	if opts.Pause <= 0 {
		opts.Pause = DefaultPause
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	c := &Controller{
		opts:    opts,
		order:   append([]int(nil), order...),
		visited: make(map[int]bool, len(order)),
	}
	for _, v := range c.order {
		c.visited[v] = false
	}
	return c
}

// Play starts a run if the controller is idle. It returns false and does
// nothing if a run is playing or has already finished; use Replay to play
// again.
func (c *Controller) Play(ctx context.Context) bool {
	return c.start(ctx, false)
}

// Replay starts a new run from a cleared visited state if the controller is
// idle or done. It returns false and does nothing if a run is playing, or if
// the previous run has not yet returned from its last OnEvent call.
func (c *Controller) Replay(ctx context.Context) bool {
	return c.start(ctx, true)
}

func (c *Controller) start(ctx context.Context, again bool) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	switch c.state {
	case Playing:
		c.opts.Logger.Debug("playback already running, ignoring start")
		return false
	case Done:
		if !again {
			return false
		}
	}

	// A finished or cancelled run may still be delivering its last event.
	if c.done != nil {
		select {
		case <-c.done:
		default:
			c.opts.Logger.Debug("previous run still ending, ignoring start")
			return false
		}
	}

	for v := range c.visited {
		c.visited[v] = false
	}
	c.state = Playing
	c.runs++
	c.err = nil
	c.done = make(chan struct{})

	go c.run(ctx, c.runs, c.done)
	return true
}

func (c *Controller) run(ctx context.Context, run int, done chan struct{}) {
	defer close(done)

	log := c.opts.Logger.WithField("run", run)

	c.emit(Event{Run: run, Kind: Reset, Step: -1, State: Playing})
	log.Debugf("playing %d values", len(c.order))

	for i, v := range c.order {
		if err := c.opts.Scheduler.Sleep(ctx, c.opts.Pause); err != nil {
			c.mutex.Lock()
			c.state = Idle
			c.err = err
			c.mutex.Unlock()
			log.WithError(err).Debugf("playback stopped at step %d", i)
			c.emit(Event{Run: run, Kind: Cancel, Step: i, State: Idle})
			return
		}

		c.mutex.Lock()
		c.visited[v] = true
		c.mutex.Unlock()
		log.Debugf("visited %d", v)
		c.emit(Event{Run: run, Kind: Visit, Step: i, Value: v, State: Playing})
	}

	c.mutex.Lock()
	c.state = Done
	c.mutex.Unlock()
	log.Debug("playback done")
	c.emit(Event{Run: run, Kind: Finish, Step: len(c.order), State: Done})
}

func (c *Controller) emit(e Event) {
	if c.opts.OnEvent != nil {
		c.opts.OnEvent(e)
	}
}

// Wait blocks until the current run, if any, has ended. It returns the error
// that stopped the run early, or nil.
func (c *Controller) Wait() error {
	c.mutex.Lock()
	done := c.done
	c.mutex.Unlock()

	if done == nil {
		return nil
	}
	<-done

	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.err
}

func (c *Controller) State() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state
}

// Runs returns the number of runs started so far.
func (c *Controller) Runs() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.runs
}

// Visited returns a copy of the visited state.
func (c *Controller) Visited() map[int]bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	m := make(map[int]bool, len(c.visited))
	for k, v := range c.visited {
		m[k] = v
	}
	return m
}

func (c *Controller) IsVisited(v int) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.visited[v]
}

// Order returns a copy of the order being played.
func (c *Controller) Order() []int {
	return append([]int(nil), c.order...)
}
