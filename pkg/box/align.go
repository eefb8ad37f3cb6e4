package box

import (
	"fmt"
	"strings"
)

// Alignment controls how leftover horizontal space is distributed around
// each line inside the box.
type Alignment int

const (
	// AlignCenter centers lines; an odd leftover column goes to the right
	// of the text (default).
	AlignCenter Alignment = iota
	// AlignLeft pushes all leftover space to the right of the text.
	AlignLeft
	// AlignRight pushes all leftover space to the left of the text.
	AlignRight
)

var alignmentNames = [...]string{
	AlignCenter: "center",
	AlignLeft:   "left",
	AlignRight:  "right",
}

// String returns "center", "left" or "right".
func (a Alignment) String() string {
	if a.valid() {
		return alignmentNames[a]
	}
	return fmt.Sprintf("alignment(%d)", int(a))
}

func (a Alignment) valid() bool {
	return a >= AlignCenter && a <= AlignRight
}

// ParseAlignment maps "center" (or "centre"), "left" and "right" to an
// Alignment, ignoring case.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre", "":
		return AlignCenter, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("box: unknown alignment %q (want center, left or right)", s)
}

// TitlePosition selects where the title is drawn relative to the border.
type TitlePosition int

const (
	// TitleInside renders the title lines at the top of the body followed
	// by a blank line (default).
	TitleInside TitlePosition = iota
	// TitleTop embeds the title in the top bar.
	TitleTop
	// TitleBottom embeds the title in the bottom bar.
	TitleBottom
)

var titlePositionNames = [...]string{
	TitleInside: "inside",
	TitleTop:    "top",
	TitleBottom: "bottom",
}

// String returns "inside", "top" or "bottom".
func (p TitlePosition) String() string {
	if p.valid() {
		return titlePositionNames[p]
	}
	return fmt.Sprintf("title-position(%d)", int(p))
}

func (p TitlePosition) valid() bool {
	return p >= TitleInside && p <= TitleBottom
}

// ParseTitlePosition maps "inside", "top" and "bottom" to a TitlePosition,
// ignoring case.
func ParseTitlePosition(s string) (TitlePosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inside", "":
		return TitleInside, nil
	case "top":
		return TitleTop, nil
	case "bottom":
		return TitleBottom, nil
	}
	return 0, fmt.Errorf("box: unknown title position %q (want inside, top or bottom)", s)
}
