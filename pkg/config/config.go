// Package config provides TOML (or YAML) configuration for boxcli: the
// default box layout, custom glyph sets, and the log level.
package config

import (
	"fmt"
	"log/slog"

	"gitlab.com/tinyland/lab/boxcli/pkg/box"
	"gitlab.com/tinyland/lab/boxcli/pkg/color"
	"gitlab.com/tinyland/lab/boxcli/pkg/glyph"
	"gitlab.com/tinyland/lab/boxcli/pkg/textwidth"
)

// Config is the top-level configuration file.
type Config struct {
	LogLevel string               `toml:"log_level" yaml:"log_level"`
	Box      BoxConfig            `toml:"box" yaml:"box"`
	Styles   map[string]glyph.Set `toml:"styles" yaml:"styles"`
}

// BoxConfig holds the layout used when no flag overrides it.
type BoxConfig struct {
	PaddingX       int    `toml:"padding_x" yaml:"padding_x"`
	PaddingY       int    `toml:"padding_y" yaml:"padding_y"`
	Style          string `toml:"style" yaml:"style"`                   // preset or [styles] name
	Alignment      string `toml:"alignment" yaml:"alignment"`           // center, left, right
	TitlePosition  string `toml:"title_position" yaml:"title_position"` // inside, top, bottom
	Color          string `toml:"color" yaml:"color"`                   // name, bright-name, 0-255, #rrggbb
	EastAsianWidth bool   `toml:"east_asian_width" yaml:"east_asian_width"`
}

// Validate checks every field that would otherwise fail later in
// box.New.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	for name, s := range c.Styles {
		if _, err := glyph.ParsePreset(name); err == nil {
			return fmt.Errorf("config: styles.%s shadows a built-in preset", name)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("config: styles.%s: %w", name, err)
		}
	}
	if c.Box.PaddingX < 0 || c.Box.PaddingY < 0 {
		return fmt.Errorf("config: box padding %d,%d: %w", c.Box.PaddingX, c.Box.PaddingY, box.ErrNegativePadding)
	}
	_, _, err := c.BoxOptions()
	return err
}

// SlogLevel maps log_level to a slog.Level. An empty level means info.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Style returns the configured glyph style. Names defined in [styles] take
// precedence over the glyph registry and match the way the registry does,
// ignoring case and treating "-" as "_".
func (c *Config) Style() glyph.Style {
	if c.Box.Style == "" {
		return glyph.Classic
	}
	key := glyph.CanonicalName(c.Box.Style)
	for name, s := range c.Styles {
		if glyph.CanonicalName(name) == key {
			return s
		}
	}
	return glyph.Named(c.Box.Style)
}

// BoxOptions converts the [box] section into renderer options.
func (c *Config) BoxOptions() (glyph.Style, box.Options, error) {
	style := c.Style()
	g, err := style.Resolve()
	if err != nil {
		return nil, box.Options{}, fmt.Errorf("config: box.style: %w", err)
	}
	if c.Box.EastAsianWidth {
		if err := g.ValidateWidth(textwidth.EastAsian); err != nil {
			return nil, box.Options{}, fmt.Errorf("config: box.style with east_asian_width: %w", err)
		}
	}

	align, err := box.ParseAlignment(c.Box.Alignment)
	if err != nil {
		return nil, box.Options{}, fmt.Errorf("config: box.alignment: %w", err)
	}
	pos, err := box.ParseTitlePosition(c.Box.TitlePosition)
	if err != nil {
		return nil, box.Options{}, fmt.Errorf("config: box.title_position: %w", err)
	}
	col, err := color.Parse(c.Box.Color)
	if err != nil {
		return nil, box.Options{}, fmt.Errorf("config: box.color: %w", err)
	}

	opts := box.Options{
		Alignment:     align,
		TitlePosition: pos,
		Color:         col,
	}
	if c.Box.EastAsianWidth {
		opts.Width = textwidth.EastAsian
	}
	return style, opts, nil
}

// NewRenderer builds a box.Renderer from the configuration, painting
// borders through painter.
func (c *Config) NewRenderer(painter color.Painter) (*box.Renderer, error) {
	style, opts, err := c.BoxOptions()
	if err != nil {
		return nil, err
	}
	opts.Painter = painter
	return box.New(c.Box.PaddingX, c.Box.PaddingY, style, opts)
}

// RegisterStyles adds every [styles] entry to the glyph registry so it can
// be selected by name later, e.g. from the command line.
func (c *Config) RegisterStyles() error {
	for name, s := range c.Styles {
		if err := glyph.Register(name, s); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
