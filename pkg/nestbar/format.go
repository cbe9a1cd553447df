package nestbar

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adamreidsmith/nestbar/internal/ansi"
)

// formatClock renders a duration rounded to whole seconds as MM:SS, or
// H:MM:SS once it reaches an hour. Minutes and seconds are zero-padded to
// two digits, hours are not padded.
func formatClock(d time.Duration) string {
	total := int(math.Round(d.Seconds()))
	mins, secs := total/60, total%60
	hours, rem := mins/60, mins%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, rem, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// formatRate renders a per-item duration as items per second below one
// second per item, and as seconds per item at or above it, right-justified
// to nine columns.
func formatRate(perItem time.Duration) string {
	secs := perItem.Seconds()
	var s string
	if secs < 1.0 {
		s = fmt.Sprintf("%.2fit/s", 1.0/secs)
	} else {
		s = fmt.Sprintf("%.2fs/it", secs)
	}
	return fmt.Sprintf("%9s", s)
}

// barSegment renders the percent-and-fill segment for the given completed
// proportion within the available space. With too little room for a bar the
// percentage alone is shown; with no room at all, nothing.
func barSegment(proportion float64, fill string, space int) string {
	percent := fmt.Sprintf("%.0f%%", proportion*100)
	inner := space - utf8.RuneCountInString(percent) - 2 // 2 for the pipes
	switch {
	case inner > 0:
		filled := int(proportion * float64(inner))
		return percent + "|" + strings.Repeat(fill, filled) + strings.Repeat(" ", inner-filled) + "|"
	case inner > -3:
		return percent
	default:
		return ""
	}
}

// counterMetric renders "index/length", or "Nit" when the length is unknown.
func (t *Tracker) counterMetric() string {
	if t.length < 0 {
		return fmt.Sprintf("%dit", t.index)
	}
	return fmt.Sprintf("%d/%d", t.index, t.length)
}

// timerMetric renders "elapsed<remaining". Remaining is projected from the
// most recent per-item gap and falls back to "?" when the length or the gap
// is unknown.
func (t *Tracker) timerMetric() string {
	var elapsed time.Duration
	if !t.timeOfCurrent.IsZero() {
		elapsed = t.timeOfCurrent.Sub(t.startTime)
	}
	remaining := "?"
	if t.length >= 0 && t.hasDelta {
		remaining = formatClock(time.Duration(t.length-t.index) * t.itemDelta)
	}
	return formatClock(elapsed) + "<" + remaining
}

// rateMetric renders the instantaneous iteration rate, "?" until two pulls
// have happened.
func (t *Tracker) rateMetric() string {
	if !t.hasDelta {
		return "?"
	}
	return formatRate(t.itemDelta)
}

// avgRateMetric renders the average iteration rate since the first pull.
func (t *Tracker) avgRateMetric() string {
	if !t.hasDelta {
		return "?"
	}
	return formatRate(t.timeOfCurrent.Sub(t.startTime) / time.Duration(t.index))
}

// barString composes the tracker's full display line at the given width:
// description prefix, bar segment sized to the leftover space, and the
// space-joined enabled metrics, with coloring applied last.
func (t *Tracker) barString(width int) string {
	prefix := ""
	if t.desc != "" {
		prefix = t.desc + ":"
	}

	parts := make([]string, 0, len(t.metrics))
	for _, m := range t.metrics {
		if s := m(t); s != "" {
			parts = append(parts, s)
		}
	}
	suffix := strings.Join(parts, " ")

	space := width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(suffix)
	if prefix != "" {
		space--
	}
	if suffix != "" {
		space--
	}

	bar := ""
	if t.length >= 0 {
		proportion := 1.0
		if t.length > 0 {
			// Clamped so a render before the first pull (index -1) stays at 0%.
			proportion = math.Min(math.Max(float64(t.index)/float64(t.length), 0), 1.0)
		}
		bar = barSegment(proportion, t.fill, space)
	}

	fields := make([]string, 0, 3)
	for _, s := range []string{prefix, bar, suffix} {
		if s != "" {
			fields = append(fields, s)
		}
	}
	line := strings.Join(fields, " ")

	if t.rainbow {
		return ansi.Rainbowize(line)
	}
	if t.textColor != "" {
		line = ansi.Colorize(line, t.textColor)
	}
	if t.bgColor != "" {
		line = ansi.Colorize(line, t.bgColor)
	}
	return line
}
