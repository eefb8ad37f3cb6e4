package box

import (
	"fmt"

	"gitlab.com/tinyland/lab/boxcli/pkg/color"
	"gitlab.com/tinyland/lab/boxcli/pkg/glyph"
	"gitlab.com/tinyland/lab/boxcli/pkg/textwidth"
)

// Options are the optional construction parameters for New.
type Options struct {
	Alignment     Alignment
	TitlePosition TitlePosition
	Color         color.Color // zero value draws an uncolored border

	// Width measures text in terminal columns. Nil selects
	// textwidth.Visible.
	Width textwidth.Func

	// Painter colors border runs. The zero value uses lipgloss's default
	// renderer.
	Painter color.Painter
}

// Config is the renderer's current configuration.
type Config struct {
	Px            int // blank columns between each vertical edge and the text
	Py            int // blank rows above and below the body
	Glyphs        glyph.Set
	Alignment     Alignment
	TitlePosition TitlePosition
	Color         color.Color
}

func (c Config) validate() error {
	if c.Px < 0 || c.Py < 0 {
		return fmt.Errorf("box: padding %d,%d: %w", c.Px, c.Py, ErrNegativePadding)
	}
	if !c.Alignment.valid() {
		return fmt.Errorf("box: %s is not a valid alignment", c.Alignment)
	}
	if !c.TitlePosition.valid() {
		return fmt.Errorf("box: %s is not a valid title position", c.TitlePosition)
	}
	return nil
}

// Update lists configuration fields to change. Nil fields keep their
// current value.
type Update struct {
	Px            *int
	Py            *int
	Style         glyph.Style
	Alignment     *Alignment
	TitlePosition *TitlePosition
	Color         *color.Color // point at the zero Color to remove the border color
}

// apply returns c with u merged in. A new style must measure one column
// per glyph under width.
func (u Update) apply(c Config, width textwidth.Func) (Config, error) {
	if u.Px != nil {
		c.Px = *u.Px
	}
	if u.Py != nil {
		c.Py = *u.Py
	}
	if u.Style != nil {
		g, err := resolveStyle(u.Style, width)
		if err != nil {
			return Config{}, err
		}
		c.Glyphs = g
	}
	if u.Alignment != nil {
		c.Alignment = *u.Alignment
	}
	if u.TitlePosition != nil {
		c.TitlePosition = *u.TitlePosition
	}
	if u.Color != nil {
		c.Color = *u.Color
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// resolveStyle resolves style and checks its glyphs with the renderer's
// width function, so that bars and body lines are measured alike.
func resolveStyle(style glyph.Style, width textwidth.Func) (glyph.Set, error) {
	g, err := style.Resolve()
	if err != nil {
		return glyph.Set{}, fmt.Errorf("box: style: %w", err)
	}
	if err := g.ValidateWidth(width); err != nil {
		return glyph.Set{}, fmt.Errorf("box: style: %w", err)
	}
	return g, nil
}
