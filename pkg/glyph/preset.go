package glyph

import (
	"fmt"
	"strings"
)

// Preset selects one of the built-in glyph sets.
type Preset int

const (
	// Classic uses plus signs at the corners with dashes and pipes.
	Classic Preset = iota + 1
	// Invisible keeps the plus-sign corners but draws blank edges.
	Invisible
	// Bold uses heavy box-drawing characters.
	Bold
	// Round uses single-line characters with rounded corners.
	Round
	// Single uses single-line box-drawing characters.
	Single
	// Double uses double-line box-drawing characters.
	Double
	// SingleDouble uses single horizontal and double vertical lines.
	SingleDouble
	// DoubleSingle uses double horizontal and single vertical lines.
	DoubleSingle
)

var presetNames = [...]string{
	Classic:      "classic",
	Invisible:    "invisible",
	Bold:         "bold",
	Round:        "round",
	Single:       "single",
	Double:       "double",
	SingleDouble: "single_double",
	DoubleSingle: "double_single",
}

// Presets lists every built-in preset in declaration order.
func Presets() []Preset {
	return []Preset{Classic, Invisible, Bold, Round, Single, Double, SingleDouble, DoubleSingle}
}

// String returns the lower-case preset name, e.g. "single_double".
func (p Preset) String() string {
	if p >= Classic && int(p) < len(presetNames) {
		return presetNames[p]
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// Resolve returns the preset's glyphs from the static table.
func (p Preset) Resolve() (Set, error) {
	if s, ok := presetSets[p]; ok {
		return s, nil
	}
	return Set{}, fmt.Errorf("glyph: %s: %w", p, ErrUnknownStyle)
}

// ParsePreset maps a name such as "Round", "single-double" or
// "DOUBLE_SINGLE" to its Preset.
func ParsePreset(name string) (Preset, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, p := range Presets() {
		if presetNames[p] == key {
			return p, nil
		}
	}
	return 0, fmt.Errorf("glyph: preset %q: %w", name, ErrUnknownStyle)
}
