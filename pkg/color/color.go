// Package color describes box border colors and paints border glyphs with
// them through lipgloss.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for names, indices or hex values that do not
// describe a terminal color.
var ErrInvalidColor = errors.New("invalid color")

// Color is a border color. The zero value means no color.
type Color struct {
	spec string // lipgloss color string: ANSI index "0".."255" or "#rrggbb"
}

// The eight standard terminal colors.
var (
	Black   = Color{"0"}
	Red     = Color{"1"}
	Green   = Color{"2"}
	Yellow  = Color{"3"}
	Blue    = Color{"4"}
	Magenta = Color{"5"}
	Cyan    = Color{"6"}
	White   = Color{"7"}
)

// colorNames maps names to ANSI indices 0-7.
var colorNames = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// Names returns the standard color names in ANSI order.
func Names() []string {
	return []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
}

// ANSI returns the color with the given 256-color palette index.
func ANSI(n int) (Color, error) {
	if n < 0 || n > 255 {
		return Color{}, fmt.Errorf("color: ANSI index %d out of range 0-255: %w", n, ErrInvalidColor)
	}
	return Color{strconv.Itoa(n)}, nil
}

// Parse reads a color from one of:
//
//	red, Blue              standard names
//	bright-red, bright_red bright variants (ANSI 8-15)
//	0..255                 palette index
//	#ff5500, ff5500        24-bit hex; six bare digits such as 123456
//	                       are read as hex, not as a palette index
//
// An empty string yields the zero Color.
func Parse(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" || key == "none" {
		return Color{}, nil
	}

	if n, ok := colorNames[key]; ok {
		return ANSI(n)
	}
	for _, prefix := range []string{"bright-", "bright_", "bright"} {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			if n, ok := colorNames[rest]; ok {
				return ANSI(n + 8)
			}
		}
	}

	// Six digits are always hex, even when they are all decimal.
	if r, g, b, ok := parseHex(key); ok {
		return Color{fmt.Sprintf("#%02x%02x%02x", r, g, b)}, nil
	}

	if n, err := strconv.Atoi(key); err == nil {
		return ANSI(n)
	}

	return Color{}, fmt.Errorf("color: %q: %w", s, ErrInvalidColor)
}

// MustParse is like Parse but panics on error. Intended for package-level
// defaults.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsZero reports whether c is the "no color" value.
func (c Color) IsZero() bool {
	return c.spec == ""
}

// String returns the standard name for ANSI 0-7, "bright-<name>" for 8-15,
// and the raw index or hex value otherwise.
func (c Color) String() string {
	if c.spec == "" {
		return "none"
	}
	if n, err := strconv.Atoi(c.spec); err == nil && n < 16 {
		name := Names()[n%8]
		if n >= 8 {
			return "bright-" + name
		}
		return name
	}
	return c.spec
}

// parseHex parses a hex color string into r, g, b components.
// Accepts "#RRGGBB" or "RRGGBB" formats.
func parseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
