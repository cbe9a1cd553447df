package nestbar

import (
	"time"

	"github.com/adamreidsmith/nestbar/internal/ansi"
)

// metricFunc renders one enabled metric from a tracker's state.
type metricFunc func(*Tracker) string

// Tracker wraps one source and records iteration timing and display
// configuration for the renderer. It has no knowledge of other trackers or
// of the terminal; its index only advances through the owning stack.
type Tracker struct {
	src    Source
	length int // -1 when indeterminate

	index         int
	startTime     time.Time
	timeOfCurrent time.Time
	itemDelta     time.Duration
	hasDelta      bool

	desc      string
	fill      string
	ncols     int
	textColor string // resolved SGR code, "" when unset
	bgColor   string
	rainbow   bool
	metrics   []metricFunc

	now func() time.Time
}

// newTracker validates the source and options and resolves the length:
// a sized source reports its own count, otherwise the Length option is
// used, otherwise the length stays indeterminate.
func newTracker(src Source, opts Options) (*Tracker, error) {
	if src == nil {
		return nil, &ConfigError{Field: "source", Message: "must not be nil"}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	length := -1
	if sized, ok := src.(Sized); ok {
		length = sized.Len()
	} else if opts.Length >= 0 {
		length = opts.Length
	}

	return &Tracker{
		src:       src,
		length:    length,
		index:     -1,
		desc:      opts.Desc,
		fill:      opts.Fill,
		ncols:     opts.NCols,
		textColor: ansi.Foreground(opts.TextColor),
		bgColor:   ansi.Background(opts.BGColor),
		rainbow:   opts.Rainbow,
		metrics:   buildMetrics(opts),
		now:       time.Now,
	}, nil
}

// buildMetrics materializes the enabled metric formatters once, in the fixed
// counter, timer, rate, average-rate order.
func buildMetrics(opts Options) []metricFunc {
	var m []metricFunc
	if opts.Counter {
		m = append(m, (*Tracker).counterMetric)
	}
	if opts.Timer {
		m = append(m, (*Tracker).timerMetric)
	}
	if opts.Rate {
		m = append(m, (*Tracker).rateMetric)
	}
	if opts.AvgRate {
		m = append(m, (*Tracker).avgRateMetric)
	}
	return m
}

// next pulls one element from the source. On success it records the pull
// time, the gap to the previous pull, and advances the index. On exhaustion
// timestamps and index are left untouched.
func (t *Tracker) next() (any, bool) {
	item, ok := t.src.Next()
	if !ok {
		return nil, false
	}

	now := t.now()
	if !t.timeOfCurrent.IsZero() {
		t.itemDelta = now.Sub(t.timeOfCurrent)
		t.hasDelta = true
	}
	t.timeOfCurrent = now
	if t.startTime.IsZero() {
		t.startTime = now
	}
	t.index++

	return item, true
}

// resetProgress rewinds the bookkeeping for a restarted sequence: index back
// to -1, timestamps and delta unset. The source itself is not rewound.
func (t *Tracker) resetProgress() {
	t.index = -1
	t.startTime = time.Time{}
	t.timeOfCurrent = time.Time{}
	t.itemDelta = 0
	t.hasDelta = false
}

// Index returns the zero-based index of the most recently pulled element,
// or -1 before the first pull.
func (t *Tracker) Index() int {
	return t.index
}

// Length returns the resolved element count, or -1 when indeterminate.
func (t *Tracker) Length() int {
	return t.length
}
