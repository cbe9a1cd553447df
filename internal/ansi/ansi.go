// Package ansi holds the VT100/ANSI escape sequences the renderer emits:
// cursor movement, line erasure, and the fixed eight-color SGR palette.
package ansi

import (
	"fmt"
	"sort"
	"strings"
)

// Escape sequences used by the renderer.
const (
	// Reset restores the default typeface.
	Reset = "\033[0m"
	// ClearLine erases from the cursor to the end of the line.
	ClearLine = "\033[K"
)

// CursorUp returns the escape sequence moving the cursor up n lines.
func CursorUp(n int) string {
	return fmt.Sprintf("\033[%dA", n)
}

// CursorDown returns the escape sequence moving the cursor down n lines.
func CursorDown(n int) string {
	return fmt.Sprintf("\033[%dB", n)
}

// palette maps each supported color name to its SGR foreground and
// background codes, in that order.
var palette = map[string][2]string{
	"black":   {"\033[30m", "\033[40m"},
	"red":     {"\033[31m", "\033[41m"},
	"green":   {"\033[32m", "\033[42m"},
	"yellow":  {"\033[33m", "\033[43m"},
	"blue":    {"\033[34m", "\033[44m"},
	"magenta": {"\033[35m", "\033[45m"},
	"cyan":    {"\033[36m", "\033[46m"},
	"white":   {"\033[37m", "\033[47m"},
}

// rainbow is the fixed color cycle applied per character in rainbow mode.
var rainbow = [...]string{
	palette["red"][0],
	palette["yellow"][0],
	palette["green"][0],
	palette["cyan"][0],
	palette["blue"][0],
	palette["magenta"][0],
}

// ValidColor reports whether name is one of the eight supported color names.
func ValidColor(name string) bool {
	_, ok := palette[name]
	return ok
}

// ColorNames returns the supported color names in sorted order, for error
// messages.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Foreground returns the SGR foreground code for name, or "" if the name is
// not in the palette.
func Foreground(name string) string {
	return palette[name][0]
}

// Background returns the SGR background code for name, or "" if the name is
// not in the palette.
func Background(name string) string {
	return palette[name][1]
}

// Colorize wraps s in the given SGR code followed by a reset.
func Colorize(s, code string) string {
	return code + s + Reset
}

// Rainbowize prefixes each character of s with the next color of the rainbow
// cycle and appends a single reset at the end.
func Rainbowize(s string) string {
	var b strings.Builder
	i := 0
	for _, r := range s {
		b.WriteString(rainbow[i%len(rainbow)])
		b.WriteRune(r)
		i++
	}
	b.WriteString(Reset)
	return b.String()
}
