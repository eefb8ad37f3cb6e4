// Package textwidth measures strings in terminal columns and splits text
// into lines the way the box renderer expects.
package textwidth

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Func reports the number of terminal columns s occupies.
type Func func(s string) int

// eastAsian treats ambiguous-width runes (box drawing, Greek, Cyrillic in
// CJK locales) as two columns wide.
var eastAsian = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = true
	return c
}()

// Visible returns the visible width of s in terminal cells. ANSI escape
// sequences are ignored. Wide characters (CJK, emoji) count as 2, and
// zero-width joiners and combining marks are folded into their grapheme
// cluster.
func Visible(s string) int {
	return ansi.StringWidth(s)
}

// EastAsian is like Visible but counts East Asian ambiguous-width runes as
// two columns, matching terminals configured for CJK locales.
func EastAsian(s string) int {
	return eastAsian.StringWidth(ansi.Strip(s))
}

// Spaces returns n blanks, or an empty string when n <= 0.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// IsLineBreak reports whether r ends a line: "\n", "\r", "\v", "\f", the
// file, group and record separators (0x1c-0x1e), NEL (U+0085), and the
// Unicode line and paragraph separators (U+2028, U+2029).
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// SplitLines splits s at every rune for which IsLineBreak holds, treating
// "\r\n" as a single break. A trailing line break does not produce a final
// empty line, and an empty string yields no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	afterCR := false
	for i, r := range s {
		if afterCR {
			afterCR = false
			if r == '\n' {
				start = i + 1
				continue
			}
		}
		if !IsLineBreak(r) {
			continue
		}
		lines = append(lines, s[start:i])
		start = i + utf8.RuneLen(r)
		afterCR = r == '\r'
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// HasLineBreak reports whether s contains any rune SplitLines breaks on.
func HasLineBreak(s string) bool {
	return strings.IndexFunc(s, IsLineBreak) >= 0
}

// Longest returns the width of the widest line as measured by width.
func Longest(lines []string, width Func) int {
	longest := 0
	for _, line := range lines {
		if w := width(line); w > longest {
			longest = w
		}
	}
	return longest
}
