package nestbar

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adamreidsmith/nestbar/internal/ansi"
	"github.com/adamreidsmith/nestbar/internal/logging"
	"github.com/adamreidsmith/nestbar/internal/termio"
)

// Stack owns the ordered set of active trackers, outer to inner, and all
// terminal render state: how many bar lines are on screen, when the last
// redraw happened, and the effective throttle interval. One Stack serves one
// terminal; construct it once and drive every nested loop through it.
//
// A Stack is not safe for concurrent use. Nesting models logically nested
// loops on a single control thread, not parallel execution.
type Stack struct {
	out   io.Writer
	width func() int
	log   *logging.Logger
	now   func() time.Time

	active       []*Tracker
	linesWritten int
	lastRender   time.Time
	interval     time.Duration

	err error
}

// StackOption configures a Stack at construction.
type StackOption func(*Stack)

// WithWidth overrides live terminal width detection, mainly for tests and
// for writers that are not terminals.
func WithWidth(fn func() int) StackOption {
	return func(s *Stack) { s.width = fn }
}

// WithLogger sets the logger the stack reports resets and failures to.
func WithLogger(l *logging.Logger) StackOption {
	return func(s *Stack) { s.log = l }
}

// WithClock overrides the wall clock, for tests.
func WithClock(fn func() time.Time) StackOption {
	return func(s *Stack) { s.now = fn }
}

// New creates a Stack rendering to out.
func New(out io.Writer, opts ...StackOption) *Stack {
	s := &Stack{
		out:      out,
		width:    func() int { return termio.Width(os.Stdout) },
		log:      logging.Default(),
		now:      time.Now,
		interval: DefaultUpdateInterval,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Default is the stack the package-level functions operate on, rendering to
// stdout.
var Default = New(os.Stdout)

// Wrap validates opts, constructs a tracker over src and pushes it as the
// new innermost bar. Nothing is rendered until the next Advance. With
// opts.Disable set, Wrap returns (nil, nil) and the stack is untouched.
//
// A tracker carrying a non-default update interval makes that interval
// effective for the whole stack until the stack next empties.
func (s *Stack) Wrap(src Source, opts Options) (*Tracker, error) {
	s.err = nil
	if opts.Disable {
		return nil, nil
	}

	t, err := newTracker(src, opts)
	if err != nil {
		return nil, err
	}
	t.now = s.now

	if opts.UpdateInterval != DefaultUpdateInterval {
		s.interval = opts.UpdateInterval
	}
	s.active = append(s.active, t)
	s.log.Debug("tracker pushed", "depth", len(s.active), "length", t.length)
	return t, nil
}

// Advance pulls the next element through the innermost tracker, redrawing
// the bars when the throttle interval has elapsed or the tracker just
// exhausted. It returns ErrExhausted exactly once per tracker; when the last
// tracker pops, all render state returns to its initial configuration.
//
// Any other error, a render failure included, resets the whole stack before
// it is returned, so the terminal is never left with orphaned bar state.
func (s *Stack) Advance() (any, error) {
	item, err := s.advance()
	if err != nil && !errors.Is(err, ErrExhausted) {
		s.err = err
		s.log.Warn("advance failed, stack reset", "error", err)
		s.reset()
	}
	return item, err
}

func (s *Stack) advance() (any, error) {
	if len(s.active) == 0 {
		return nil, ErrNoTracker
	}
	top := s.active[len(s.active)-1]
	item, ok := top.next()

	if now := s.now(); !ok || now.Sub(s.lastRender) >= s.interval {
		if err := s.render(); err != nil {
			return nil, err
		}
		s.lastRender = now
	}

	if !ok {
		s.active = s.active[:len(s.active)-1]
		s.log.Debug("tracker popped", "depth", len(s.active))
		if len(s.active) == 0 {
			s.reset()
		}
		return nil, ErrExhausted
	}
	return item, nil
}

// render draws one frame as a single buffered write to minimize flicker:
// grow the screen region with newlines if the stack deepened, move to the
// top bar line, rewrite every bar outer to inner, and erase any lines left
// over from a deeper stack. The cursor always ends linesWritten lines below
// the top bar.
func (s *Stack) render() error {
	n := len(s.active)
	var buf bytes.Buffer

	if extra := n - s.linesWritten; extra > 0 {
		buf.WriteString(strings.Repeat("\n", extra))
		s.linesWritten = n
	}

	buf.WriteString("\r")
	buf.WriteString(ansi.CursorUp(s.linesWritten))
	for _, t := range s.active {
		width := t.ncols
		if width == 0 {
			width = s.width()
		}
		buf.WriteString(ansi.ClearLine)
		buf.WriteString(t.barString(width))
		buf.WriteString(ansi.CursorDown(1))
		buf.WriteString("\r")
	}

	if stale := s.linesWritten - n; stale > 0 {
		for range stale {
			buf.WriteString(ansi.ClearLine)
			buf.WriteString(ansi.CursorDown(1))
		}
		buf.WriteString(ansi.CursorUp(stale))
		s.linesWritten = n
	}

	if _, err := s.out.Write(buf.Bytes()); err != nil {
		return &RenderError{Err: err}
	}
	return nil
}

// Cancel abandons the innermost tracker without forcing a render. With at
// most one tracker active the whole stack resets instead.
func (s *Stack) Cancel() {
	if len(s.active) <= 1 {
		s.reset()
		return
	}
	s.active = s.active[:len(s.active)-1]
}

// Reset drops every tracker and returns the render state to its initial
// configuration: no lines written, render clock cleared, default interval.
func (s *Stack) Reset() {
	s.reset()
}

func (s *Stack) reset() {
	s.active = nil
	s.linesWritten = 0
	s.lastRender = time.Time{}
	s.interval = DefaultUpdateInterval
}

// Err returns the failure that aborted the most recent wrapped loop, if
// any. ErrExhausted is never recorded. Cleared by the next Wrap.
func (s *Stack) Err() error {
	return s.err
}

// Len returns the number of active trackers.
func (s *Stack) Len() int {
	return len(s.active)
}

// LinesWritten returns the number of terminal lines occupied by the last
// render.
func (s *Stack) LinesWritten() int {
	return s.linesWritten
}

// Package-level functions operating on the Default stack.

// Wrap pushes a tracker for src onto the default stack.
func Wrap(src Source, opts Options) (*Tracker, error) {
	return Default.Wrap(src, opts)
}

// Advance pulls the next element through the default stack.
func Advance() (any, error) {
	return Default.Advance()
}

// Cancel abandons the innermost tracker of the default stack.
func Cancel() {
	Default.Cancel()
}
