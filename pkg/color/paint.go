package color

import (
	"github.com/charmbracelet/lipgloss"
)

// Painter wraps border glyph runs in color escape sequences. The emitted
// sequences follow the color profile of the lipgloss renderer, so an
// Ascii profile (pipes, NO_COLOR) yields plain text.
type Painter struct {
	r *lipgloss.Renderer
}

// NewPainter returns a Painter bound to r. A nil renderer selects
// lipgloss's default stdout renderer.
func NewPainter(r *lipgloss.Renderer) Painter {
	return Painter{r: r}
}

// Paint returns s colored with c. s is returned unchanged when c is the
// zero Color or s is empty.
func (p Painter) Paint(c Color, s string) string {
	if c.IsZero() || s == "" {
		return s
	}
	r := p.r
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return r.NewStyle().Foreground(lipgloss.Color(c.spec)).Render(s)
}
