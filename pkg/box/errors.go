package box

import "errors"

var (
	// ErrTitlePosition is returned when a title drawn on the top or bottom
	// bar contains a line break.
	ErrTitlePosition = errors.New("title outside the box cannot span multiple lines")

	// ErrTitleLength is returned when a title drawn on the top or bottom
	// bar is wider than the bar.
	ErrTitleLength = errors.New("title is wider than the box bar")

	// ErrDifferentLength is returned when the top and bottom bars of a box
	// with an inside title differ in width. Glyph sets that pass
	// glyph.Set.Validate never trigger it under the default width function.
	ErrDifferentLength = errors.New("top and bottom bars differ in width")

	// ErrNegativePadding is returned by New and Update for padding < 0.
	ErrNegativePadding = errors.New("negative padding")
)
