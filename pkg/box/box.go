// Package box renders titled, padded and aligned text boxes for terminal
// output.
//
// A Renderer owns its configuration and is meant for use by one goroutine
// at a time. Callers that share a Renderer must serialize Update against
// Render themselves.
package box

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/boxcli/pkg/color"
	"gitlab.com/tinyland/lab/boxcli/pkg/glyph"
	"gitlab.com/tinyland/lab/boxcli/pkg/textwidth"
)

// Renderer draws boxes with a fixed glyph set, padding and layout.
type Renderer struct {
	cfg     Config
	width   textwidth.Func
	painter color.Painter
}

// New creates a Renderer with px blank columns on each side of the text,
// py blank rows above and below it, and the border glyphs of style.
// The style is resolved once here; later changes to a registry entry do not
// affect the renderer until Update is called with a style. Every glyph must
// be one column wide under opts.Width, otherwise glyph.ErrInvalidGlyph is
// returned.
func New(px, py int, style glyph.Style, opts Options) (*Renderer, error) {
	if style == nil {
		return nil, fmt.Errorf("box: nil style")
	}
	width := opts.Width
	if width == nil {
		width = textwidth.Visible
	}
	g, err := resolveStyle(style, width)
	if err != nil {
		return nil, err
	}
	cfg := Config{
		Px:            px,
		Py:            py,
		Glyphs:        g,
		Alignment:     opts.Alignment,
		TitlePosition: opts.TitlePosition,
		Color:         opts.Color,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Renderer{cfg: cfg, width: width, painter: opts.Painter}, nil
}

// Config returns a copy of the current configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Update merges u into the configuration. Fields left nil keep their value.
// If any supplied field is invalid the configuration is left unchanged.
func (r *Renderer) Update(u Update) error {
	next, err := u.apply(r.cfg, r.width)
	if err != nil {
		return err
	}
	r.cfg = next
	return nil
}

// Render returns title and content drawn inside a box. Every line of the
// result, including the last, ends in "\n".
//
// The box is as wide as the widest content line (and, for an inside title,
// the widest title line) plus 2*Px columns of padding and the two vertical
// edges. A title on the top or bottom bar must be a single line no wider
// than the bar; otherwise ErrTitlePosition or ErrTitleLength is returned
// and nothing is rendered.
func (r *Renderer) Render(title, content string) (string, error) {
	cfg := r.cfg
	inside := cfg.TitlePosition == TitleInside

	contentLines := textwidth.SplitLines(content)
	var titleLines []string
	if inside {
		titleLines = textwidth.SplitLines(title)
	}

	longest := textwidth.Longest(contentLines, r.width)
	if inside {
		longest = max(longest, textwidth.Longest(titleLines, r.width))
	}

	// n is the outer width, both vertical edges included.
	n := longest + 2*cfg.Px + 2

	if !inside {
		if textwidth.HasLineBreak(title) {
			return "", fmt.Errorf("box: %s title %q: %w", cfg.TitlePosition, title, ErrTitlePosition)
		}
		if tw := r.width(title); tw > n-2 {
			return "", fmt.Errorf("box: %s title is %d columns, bar is %d: %w", cfg.TitlePosition, tw, n-2, ErrTitleLength)
		}
	}

	body := make([]string, 0, len(titleLines)+1+len(contentLines))
	if inside && title != "" {
		body = append(body, titleLines...)
		body = append(body, "")
	}
	body = append(body, contentLines...)

	g := cfg.Glyphs
	bar := strings.Repeat(g.Horizontal, n-2)
	topBar := r.paint(g.TopLeft + bar + g.TopRight)
	bottomBar := r.paint(g.BottomLeft + bar + g.BottomRight)

	switch cfg.TitlePosition {
	case TitleTop:
		topBar = r.titleBar(g.TopLeft, g.TopRight, title, n)
	case TitleBottom:
		bottomBar = r.titleBar(g.BottomLeft, g.BottomRight, title, n)
	default:
		if tw, bw := r.width(topBar), r.width(bottomBar); tw != bw {
			return "", fmt.Errorf("box: top bar is %d columns, bottom bar is %d: %w", tw, bw, ErrDifferentLength)
		}
	}

	sep := r.paint(g.Vertical)
	padLine := sep + textwidth.Spaces(n-2) + sep

	var buf strings.Builder
	buf.WriteString(topBar)
	buf.WriteByte('\n')

	for i := 0; i < cfg.Py; i++ {
		buf.WriteString(padLine)
		buf.WriteByte('\n')
	}

	for _, line := range body {
		r.writeLine(&buf, line, longest, sep)
		buf.WriteByte('\n')
	}

	for i := 0; i < cfg.Py; i++ {
		buf.WriteString(padLine)
		buf.WriteByte('\n')
	}

	buf.WriteString(bottomBar)
	buf.WriteByte('\n')
	return buf.String(), nil
}

// writeLine writes one body line between the vertical edges, aligned
// within longest columns plus the horizontal padding on each side.
func (r *Renderer) writeLine(buf *strings.Builder, line string, longest int, sep string) {
	// space is half the shortfall; odd carries the remainder column.
	var space, odd string
	if l := r.width(line); l < longest {
		diff := longest - l
		space = textwidth.Spaces(diff / 2)
		if diff%2 != 0 {
			odd = " "
		}
	}
	px := textwidth.Spaces(r.cfg.Px)
	sp := space + px

	var parts []string
	switch r.cfg.Alignment {
	case AlignLeft:
		parts = []string{sep, px, line, odd, sp, space, sep}
	case AlignRight:
		parts = []string{sep, space, sp, odd, line, px, sep}
	default:
		parts = []string{sep, sp, line, odd, sp, sep}
	}
	for _, p := range parts {
		buf.WriteString(p)
	}
}

// titleBar renders a top or bottom bar with the title left-anchored next
// to the corner:
//
//	corner + " " + title + " " + horizontal run + corner
func (r *Renderer) titleBar(left, right, title string, n int) string {
	run := ""
	if count := n - r.width(title) - 4; count > 0 {
		run = strings.Repeat(r.cfg.Glyphs.Horizontal, count)
	}
	return r.paint(left) + " " + title + " " + r.paint(run) + r.paint(right)
}

// paint colors a border run with the configured color, if any.
func (r *Renderer) paint(s string) string {
	return r.painter.Paint(r.cfg.Color, s)
}
