package nestbar

import (
	"errors"
	"fmt"
)

// ErrExhausted signals the normal end of a tracked sequence. It is a control
// signal, not a failure: Advance returns it exactly once per tracker, after
// which the tracker has been popped from the stack.
var ErrExhausted = errors.New("nestbar: sequence exhausted")

// ErrNoTracker is returned by Advance when the stack has no active tracker.
var ErrNoTracker = errors.New("nestbar: no active tracker")

// ConfigError reports an invalid construction option. It is returned
// synchronously by Wrap before anything has been pushed, so shared state is
// never corrupted by a bad configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("nestbar: invalid option %s: %s", e.Field, e.Message)
}

// RenderError wraps a terminal write failure.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "nestbar: render failed: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
