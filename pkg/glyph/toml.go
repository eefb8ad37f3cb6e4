package glyph

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// glTOMLFile is the TOML layout of a style file:
//
//	[styles.dots]
//	horizontal = "."
//	...
type glTOMLFile struct {
	Styles map[string]Set `toml:"styles"`
}

// LoadFromTOML parses custom glyph sets from raw TOML bytes. Every set is
// validated; the first invalid one fails the whole file.
func LoadFromTOML(data []byte) (map[string]Set, error) {
	var f glTOMLFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("glyph: parse TOML: %w", err)
	}
	for name, s := range f.Styles {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("glyph: style %q: %w", name, err)
		}
	}
	if f.Styles == nil {
		f.Styles = map[string]Set{}
	}
	return f.Styles, nil
}

// SaveToTOML serializes sets into the format read by LoadFromTOML.
func SaveToTOML(sets map[string]Set) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(glTOMLFile{Styles: sets}); err != nil {
		return nil, fmt.Errorf("glyph: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}
