package nestbar

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adamreidsmith/nestbar/internal/ansi"
)

// Defaults for Options.
const (
	DefaultFill           = "█"
	DefaultUpdateInterval = 50 * time.Millisecond
)

// Options configures one tracked loop. The zero value disables every metric;
// start from DefaultOptions and override fields as needed.
type Options struct {
	// Length is the element count used only when the source does not
	// implement Sized. Negative means indeterminate: no bar segment is
	// drawn, only the description and metrics.
	Length int

	// Desc is an optional label printed ahead of the bar. The empty string
	// means no label.
	Desc string

	// Fill is the glyph the bar is filled with. Exactly one character.
	Fill string

	// UpdateInterval is the minimum wall-clock gap between redraws. A
	// non-default value becomes the effective interval for the whole stack
	// until the stack next empties.
	UpdateInterval time.Duration

	// Disable bypasses tracking entirely: Wrap returns no tracker and the
	// stack is left untouched, so the loop is invisible to the renderer.
	Disable bool

	// NCols fixes the display width in columns. Zero means the live
	// terminal width.
	NCols int

	// TextColor and BGColor name the ANSI foreground and background colors,
	// one of black, red, green, yellow, blue, magenta, cyan or white. The
	// empty string leaves the terminal default.
	TextColor string
	BGColor   string

	// Rainbow cycles a color per character across the whole line. When set,
	// TextColor and BGColor are ignored.
	Rainbow bool

	// Metric toggles. Enabled metrics are rendered after the bar in this
	// fixed order.
	Counter bool
	Timer   bool
	Rate    bool
	AvgRate bool
}

// DefaultOptions returns the option defaults: counter, timer and rate
// enabled, average rate disabled, indeterminate length.
func DefaultOptions() Options {
	return Options{
		Length:         -1,
		Fill:           DefaultFill,
		UpdateInterval: DefaultUpdateInterval,
		Counter:        true,
		Timer:          true,
		Rate:           true,
	}
}

// validate checks every option eagerly so that a bad configuration fails at
// wrap time, before any tracker has been pushed.
func (o Options) validate() error {
	if utf8.RuneCountInString(o.Fill) != 1 {
		return &ConfigError{Field: "Fill", Message: "must be exactly one character"}
	}
	if o.UpdateInterval <= 0 {
		return &ConfigError{Field: "UpdateInterval", Message: "must be positive"}
	}
	if o.NCols < 0 {
		return &ConfigError{Field: "NCols", Message: "must be non-negative"}
	}
	if o.TextColor != "" && !ansi.ValidColor(o.TextColor) {
		return &ConfigError{Field: "TextColor", Message: "must be one of " + strings.Join(ansi.ColorNames(), ", ")}
	}
	if o.BGColor != "" && !ansi.ValidColor(o.BGColor) {
		return &ConfigError{Field: "BGColor", Message: "must be one of " + strings.Join(ansi.ColorNames(), ", ")}
	}
	return nil
}
