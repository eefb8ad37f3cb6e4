// Package glyph defines the border character sets used to draw boxes: the
// eight built-in presets, caller-supplied custom sets, and a name registry
// that custom sets loaded from TOML can join.
package glyph

import (
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/boxcli/pkg/textwidth"
)

var (
	// ErrInvalidGlyph is returned when a glyph is empty, contains a line
	// break or is not exactly one terminal column wide.
	ErrInvalidGlyph = errors.New("invalid glyph")
	// ErrUnknownStyle is returned when a preset or style name has no entry.
	ErrUnknownStyle = errors.New("unknown style")
)

// Set holds the six characters that define a border.
type Set struct {
	Horizontal  string `toml:"horizontal" yaml:"horizontal"`
	Vertical    string `toml:"vertical" yaml:"vertical"`
	TopLeft     string `toml:"top_left" yaml:"top_left"`
	TopRight    string `toml:"top_right" yaml:"top_right"`
	BottomLeft  string `toml:"bottom_left" yaml:"bottom_left"`
	BottomRight string `toml:"bottom_right" yaml:"bottom_right"`
}

// Validate checks that every glyph occupies exactly one terminal column.
func (s Set) Validate() error {
	return s.ValidateWidth(textwidth.Visible)
}

// ValidateWidth is like Validate but measures each glyph with width. A set
// of ambiguous-width box drawing runes passes Validate yet fails under
// textwidth.EastAsian.
func (s Set) ValidateWidth(width textwidth.Func) error {
	fields := []struct {
		name  string
		value string
	}{
		{"horizontal", s.Horizontal},
		{"vertical", s.Vertical},
		{"top_left", s.TopLeft},
		{"top_right", s.TopRight},
		{"bottom_left", s.BottomLeft},
		{"bottom_right", s.BottomRight},
	}
	for _, f := range fields {
		switch {
		case f.value == "":
			return fmt.Errorf("glyph: %s is empty: %w", f.name, ErrInvalidGlyph)
		case textwidth.HasLineBreak(f.value):
			return fmt.Errorf("glyph: %s %q contains a line break: %w", f.name, f.value, ErrInvalidGlyph)
		}
		if w := width(f.value); w != 1 {
			return fmt.Errorf("glyph: %s %q is %d columns wide, want 1: %w", f.name, f.value, w, ErrInvalidGlyph)
		}
	}
	return nil
}

// Resolve returns s after validating it, so a raw Set can be used directly
// as a Style.
func (s Set) Resolve() (Set, error) {
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Style is anything that can be turned into a concrete glyph Set: a
// built-in Preset, a custom Set, or a Named registry entry.
type Style interface {
	Resolve() (Set, error)
}

// Named refers to a style by its registry name, built-in or custom.
type Named string

// Resolve looks the name up in the registry.
func (n Named) Resolve() (Set, error) {
	if s, ok := Lookup(string(n)); ok {
		return s, nil
	}
	return Set{}, fmt.Errorf("glyph: style %q: %w", string(n), ErrUnknownStyle)
}
