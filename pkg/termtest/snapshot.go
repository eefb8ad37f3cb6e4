// Package termtest captures rendered boxes and compares them line by line
// so golden tests can report exactly which row differs.
package termtest

import (
	"fmt"
	"strings"
)

// Snapshot captures the rendered output for comparison testing.
type Snapshot struct {
	Name    string // Descriptive name for the snapshot
	Style   string // Glyph style the box was drawn with
	Content string // The rendered string
}

// CaptureSnapshot runs render and stores its output. The render error, if
// any, is returned unchanged.
func CaptureSnapshot(name, style string, render func() (string, error)) (Snapshot, error) {
	out, err := render()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Name: name, Style: style, Content: out}, nil
}

// Diff describes a single line difference between two snapshots.
type Diff struct {
	Line     int    // 1-based line number where the difference occurs
	Expected string // The expected line content
	Actual   string // The actual line content
}

// CompareSnapshots checks two snapshots for differences.
// Returns nil if the snapshots are identical.
func CompareSnapshots(expected, actual Snapshot) []Diff {
	expectedLines := ttSplitLines(expected.Content)
	actualLines := ttSplitLines(actual.Content)

	maxLen := max(len(expectedLines), len(actualLines))

	var diffs []Diff
	for i := 0; i < maxLen; i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			diffs = append(diffs, Diff{
				Line:     i + 1,
				Expected: eLine,
				Actual:   aLine,
			})
		}
	}

	return diffs
}

// FormatDiffs renders diffs one per line for test failure messages.
func FormatDiffs(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		fmt.Fprintf(&b, "line %d:\n  want %q\n  got  %q\n", d.Line, d.Expected, d.Actual)
	}
	return b.String()
}

// ttSplitLines splits a string into lines, handling the edge case where
// an empty string should produce a single empty line for comparison.
func ttSplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
