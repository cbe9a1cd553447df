// Package config loads display defaults for the demo binary from an
// optional .nestbar.yaml file in the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/adamreidsmith/nestbar/internal/ansi"
)

// ConfigFileName is the file read from the base path.
const ConfigFileName = ".nestbar.yaml"

// Default values for Display.
const (
	DefaultFill            = "█"
	DefaultIntervalSeconds = 0.05
)

// Display holds the progress bar defaults configurable via .nestbar.yaml.
type Display struct {
	Fill            string  `yaml:"fill"`
	IntervalSeconds float64 `yaml:"interval_seconds"`
	NCols           int     `yaml:"ncols"`
	TextColor       string  `yaml:"text_color"`
	BGColor         string  `yaml:"bg_color"`
	Rainbow         bool    `yaml:"rainbow"`
}

// DefaultDisplay returns a Display with the built-in defaults.
func DefaultDisplay() Display {
	return Display{
		Fill:            DefaultFill,
		IntervalSeconds: DefaultIntervalSeconds,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads and parses .nestbar.yaml from the given base path. A missing
// file yields the defaults; a present file is validated eagerly.
func Load(basePath string) (*Display, error) {
	path := filepath.Join(basePath, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			d := DefaultDisplay()
			return &d, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	d := DefaultDisplay()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks that all display values are usable.
func Validate(d *Display) error {
	if utf8.RuneCountInString(d.Fill) != 1 {
		return ValidationError{Field: "fill", Message: "must be exactly one character"}
	}
	if d.IntervalSeconds <= 0 {
		return ValidationError{Field: "interval_seconds", Message: "must be positive"}
	}
	if d.NCols < 0 {
		return ValidationError{Field: "ncols", Message: "must be non-negative"}
	}
	if d.TextColor != "" && !ansi.ValidColor(d.TextColor) {
		return ValidationError{Field: "text_color", Message: "must be one of " + strings.Join(ansi.ColorNames(), ", ")}
	}
	if d.BGColor != "" && !ansi.ValidColor(d.BGColor) {
		return ValidationError{Field: "bg_color", Message: "must be one of " + strings.Join(ansi.ColorNames(), ", ")}
	}
	return nil
}
