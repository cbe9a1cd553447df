package nestbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced wall clock for deterministic timing.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestTracker(t *testing.T, src Source, opts Options, clock *fakeClock) *Tracker {
	t.Helper()
	tr, err := newTracker(src, opts)
	require.NoError(t, err)
	tr.now = clock.now
	return tr
}

func TestNewTrackerValidation(t *testing.T) {
	t.Parallel()

	t.Run("nil source rejected", func(t *testing.T) {
		t.Parallel()
		_, err := newTracker(nil, DefaultOptions())
		var ce *ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "source", ce.Field)
	})

	t.Run("invalid options rejected", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.Fill = ""
		_, err := newTracker(Range(3), opts)
		assert.Error(t, err)
	})
}

func TestLengthResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  Source
		hint int
		want int
	}{
		{name: "sized source wins", src: Range(7), hint: 99, want: 7},
		{name: "slice source reports its length", src: Slice([]string{"a", "b"}), hint: -1, want: 2},
		{name: "hint used for unsized source", src: Func(func() (any, bool) { return nil, false }), hint: 12, want: 12},
		{name: "zero hint is a valid length", src: Func(func() (any, bool) { return nil, false }), hint: 0, want: 0},
		{name: "indeterminate without hint", src: Func(func() (any, bool) { return nil, false }), hint: -1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := DefaultOptions()
			opts.Length = tt.hint
			tr, err := newTracker(tt.src, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Length())
		})
	}
}

func TestTrackerNextSequence(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tr := newTestTracker(t, Range(5), DefaultOptions(), clock)

	assert.Equal(t, -1, tr.Index())

	for want := 0; want < 5; want++ {
		item, ok := tr.next()
		require.True(t, ok)
		assert.Equal(t, want, item)
		assert.Equal(t, want, tr.Index())
		clock.advance(time.Second)
	}

	// Exhaustion leaves index and timestamps untouched.
	before := tr.timeOfCurrent
	_, ok := tr.next()
	assert.False(t, ok)
	assert.Equal(t, 4, tr.Index())
	assert.Equal(t, before, tr.timeOfCurrent)
}

func TestTrackerTiming(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tr := newTestTracker(t, Range(10), DefaultOptions(), clock)

	_, ok := tr.next()
	require.True(t, ok)
	assert.Equal(t, clock.now(), tr.startTime)
	assert.Equal(t, clock.now(), tr.timeOfCurrent)
	assert.False(t, tr.hasDelta, "delta unknown after a single pull")

	clock.advance(250 * time.Millisecond)
	_, ok = tr.next()
	require.True(t, ok)
	assert.True(t, tr.hasDelta)
	assert.Equal(t, 250*time.Millisecond, tr.itemDelta)
	assert.Equal(t, clock.now(), tr.timeOfCurrent)
	assert.NotEqual(t, tr.startTime, tr.timeOfCurrent)

	clock.advance(2 * time.Second)
	_, ok = tr.next()
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, tr.itemDelta, "delta tracks the two most recent pulls")
}

func TestTrackerResetProgress(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tr := newTestTracker(t, Range(5), DefaultOptions(), clock)

	tr.next()
	clock.advance(time.Second)
	tr.next()

	tr.resetProgress()
	assert.Equal(t, -1, tr.Index())
	assert.True(t, tr.startTime.IsZero())
	assert.True(t, tr.timeOfCurrent.IsZero())
	assert.False(t, tr.hasDelta)
}

func TestMetricFormatters(t *testing.T) {
	t.Parallel()

	t.Run("counter with known length", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		tr := newTestTracker(t, Range(5), DefaultOptions(), clock)
		tr.next()
		assert.Equal(t, "0/5", tr.counterMetric())
	})

	t.Run("counter with unknown length", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		src := Func(func() (any, bool) { return "x", true })
		tr := newTestTracker(t, src, DefaultOptions(), clock)
		tr.next()
		tr.next()
		assert.Equal(t, "1it", tr.counterMetric())
	})

	t.Run("timer before first pull", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		tr := newTestTracker(t, Range(5), DefaultOptions(), clock)
		assert.Equal(t, "00:00<?", tr.timerMetric())
	})

	t.Run("timer with known length and delta", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		tr := newTestTracker(t, Range(5), DefaultOptions(), clock)
		tr.next()
		clock.advance(2 * time.Second)
		tr.next()
		// elapsed 2s, remaining (5-1)*2s = 8s
		assert.Equal(t, "00:02<00:08", tr.timerMetric())
	})

	t.Run("timer with unknown length", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		src := Func(func() (any, bool) { return "x", true })
		tr := newTestTracker(t, src, DefaultOptions(), clock)
		tr.next()
		clock.advance(time.Second)
		tr.next()
		assert.Equal(t, "00:01<?", tr.timerMetric())
	})

	t.Run("rate unknown before second pull", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		tr := newTestTracker(t, Range(5), DefaultOptions(), clock)
		tr.next()
		assert.Equal(t, "?", tr.rateMetric())
	})

	t.Run("rate from most recent gap", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		tr := newTestTracker(t, Range(5), DefaultOptions(), clock)
		tr.next()
		clock.advance(500 * time.Millisecond)
		tr.next()
		assert.Equal(t, " 2.00it/s", tr.rateMetric())
	})

	t.Run("average rate over all pulls", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		tr := newTestTracker(t, Range(5), DefaultOptions(), clock)
		tr.next()
		clock.advance(time.Second)
		tr.next()
		clock.advance(3 * time.Second)
		tr.next()
		// 4s over 2 items = 2s per item
		assert.Equal(t, " 2.00s/it", tr.avgRateMetric())
		assert.Equal(t, " 3.00s/it", tr.rateMetric())
	})

	t.Run("average rate unknown before second pull", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		tr := newTestTracker(t, Range(5), DefaultOptions(), clock)
		tr.next()
		assert.Equal(t, "?", tr.avgRateMetric())
	})
}

func TestBuildMetricsOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts func() Options
		want int
	}{
		{name: "defaults enable three", opts: DefaultOptions, want: 3},
		{
			name: "all four",
			opts: func() Options {
				o := DefaultOptions()
				o.AvgRate = true
				return o
			},
			want: 4,
		},
		{
			name: "none",
			opts: func() Options {
				o := DefaultOptions()
				o.Counter, o.Timer, o.Rate = false, false, false
				return o
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, buildMetrics(tt.opts()), tt.want)
		})
	}
}

func TestBarString(t *testing.T) {
	t.Parallel()

	t.Run("counter only with known length", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		opts := DefaultOptions()
		opts.Timer, opts.Rate = false, false
		tr := newTestTracker(t, Range(10), opts, clock)
		for range 5 {
			tr.next()
		}

		// width 30: suffix "4/10" (4), bar space 30-4-1 = 25,
		// inner 25-3-2 = 20, filled floor(0.4*20) = 8
		assert.Equal(t, "40%|████████            | 4/10", tr.barString(30))
	})

	t.Run("description prefix", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		opts := DefaultOptions()
		opts.Desc = "load"
		opts.Timer, opts.Rate, opts.Counter = false, false, false
		tr := newTestTracker(t, Range(4), opts, clock)
		tr.next()
		tr.next()

		// prefix "load:" (5), bar space 20-5-1 = 14, inner 14-3-2 = 9
		assert.Equal(t, "load: 25%|██       |", tr.barString(20))
	})

	t.Run("indeterminate length has no bar segment", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		opts := DefaultOptions()
		opts.Timer, opts.Rate = false, false
		src := Func(func() (any, bool) { return "x", true })
		tr := newTestTracker(t, src, opts, clock)
		tr.next()

		assert.Equal(t, "0it", tr.barString(40))
	})

	t.Run("text color wraps the whole line", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		opts := DefaultOptions()
		opts.TextColor = "green"
		opts.Timer, opts.Rate, opts.Counter = false, false, false
		tr := newTestTracker(t, Range(2), opts, clock)
		tr.next()

		got := tr.barString(12)
		assert.True(t, len(got) > 0)
		assert.Equal(t, "\033[32m", got[:5])
		assert.Equal(t, "\033[0m", got[len(got)-4:])
	})

	t.Run("background wraps text-colored line again", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		opts := DefaultOptions()
		opts.TextColor = "green"
		opts.BGColor = "blue"
		opts.Timer, opts.Rate, opts.Counter = false, false, false
		tr := newTestTracker(t, Range(2), opts, clock)
		tr.next()

		got := tr.barString(12)
		assert.Equal(t, "\033[44m\033[32m", got[:10])
	})

	t.Run("rainbow overrides text and background colors", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		opts := DefaultOptions()
		opts.Rainbow = true
		opts.TextColor = "green"
		opts.BGColor = "blue"
		opts.Timer, opts.Rate, opts.Counter = false, false, false
		tr := newTestTracker(t, Range(2), opts, clock)
		tr.next()

		got := tr.barString(12)
		assert.NotContains(t, got, "\033[32m")
		assert.NotContains(t, got, "\033[44m")
		assert.Contains(t, got, "\033[31m")
	})
}
