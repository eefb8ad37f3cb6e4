package glyph

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/boxcli/pkg/textwidth"
)

// --- Preset table ---

func TestPresetTable(t *testing.T) {
	tests := []struct {
		preset Preset
		want   string // TL TR BL BR H V
	}{
		{Classic, "++++-|"},
		{Invisible, "++++  "},
		{Bold, "┏┓┗┛━┃"},
		{Round, "╭╮╰╯─│"},
		{Single, "┌┐└┘─│"},
		{Double, "╔╗╚╝═║"},
		{SingleDouble, "╓╖╙╜─║"},
		{DoubleSingle, "╒╕╘╛═│"},
	}
	for _, tt := range tests {
		s, err := tt.preset.Resolve()
		if err != nil {
			t.Fatalf("%s.Resolve() error: %v", tt.preset, err)
		}
		got := s.TopLeft + s.TopRight + s.BottomLeft + s.BottomRight + s.Horizontal + s.Vertical
		if got != tt.want {
			t.Errorf("%s glyphs = %q, want %q", tt.preset, got, tt.want)
		}
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range Presets() {
		s, err := p.Resolve()
		if err != nil {
			t.Fatalf("%s.Resolve() error: %v", p, err)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("%s does not validate: %v", p, err)
		}
	}
}

func TestPresetZeroValueUnknown(t *testing.T) {
	var p Preset
	if _, err := p.Resolve(); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Preset(0).Resolve() error = %v, want ErrUnknownStyle", err)
	}
}

func TestPresetString(t *testing.T) {
	if s := SingleDouble.String(); s != "single_double" {
		t.Errorf("SingleDouble.String() = %q", s)
	}
	if s := Preset(42).String(); s != "preset(42)" {
		t.Errorf("Preset(42).String() = %q", s)
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]Preset{
		"classic":       Classic,
		"ROUND":         Round,
		"single-double": SingleDouble,
		"Double_Single": DoubleSingle,
		" bold ":        Bold,
	}
	for in, want := range tests {
		got, err := ParsePreset(in)
		if err != nil {
			t.Errorf("ParsePreset(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePreset(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParsePreset("dashed"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("ParsePreset(dashed) error = %v, want ErrUnknownStyle", err)
	}
}

// --- Validate ---

func TestValidateRejectsBadGlyphs(t *testing.T) {
	good, _ := Classic.Resolve()

	tests := []struct {
		name   string
		mutate func(*Set)
		field  string
	}{
		{"empty", func(s *Set) { s.Horizontal = "" }, "horizontal"},
		{"wide", func(s *Set) { s.Vertical = "你" }, "vertical"},
		{"two chars", func(s *Set) { s.TopLeft = "++" }, "top_left"},
		{"newline", func(s *Set) { s.BottomRight = "\n" }, "bottom_right"},
		{"line separator", func(s *Set) { s.BottomLeft = "\u2028" }, "bottom_left"},
	}
	for _, tt := range tests {
		s := good
		tt.mutate(&s)
		err := s.Validate()
		if !errors.Is(err, ErrInvalidGlyph) {
			t.Errorf("%s: Validate() error = %v, want ErrInvalidGlyph", tt.name, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.field) {
			t.Errorf("%s: error %q does not name field %q", tt.name, err, tt.field)
		}
	}
}

func TestSetResolveValidates(t *testing.T) {
	custom := Set{Horizontal: "~", Vertical: "!", TopLeft: "*", TopRight: "*", BottomLeft: "*", BottomRight: "*"}
	got, err := custom.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != custom {
		t.Errorf("Resolve() = %+v, want %+v", got, custom)
	}

	custom.Vertical = ""
	if _, err := custom.Resolve(); err == nil {
		t.Error("Resolve() with empty vertical should fail")
	}
}

func TestValidateWidthEastAsian(t *testing.T) {
	classic, _ := Classic.Resolve()
	if err := classic.ValidateWidth(textwidth.EastAsian); err != nil {
		t.Errorf("classic under EastAsian: %v", err)
	}
	for _, p := range []Preset{Bold, Round, Single, Double, SingleDouble, DoubleSingle} {
		s, _ := p.Resolve()
		if err := s.Validate(); err != nil {
			t.Errorf("%s.Validate() error: %v", p, err)
		}
		if err := s.ValidateWidth(textwidth.EastAsian); !errors.Is(err, ErrInvalidGlyph) {
			t.Errorf("%s under EastAsian: error = %v, want ErrInvalidGlyph", p, err)
		}
	}
}

// --- Registry ---

func TestCanonicalName(t *testing.T) {
	tests := map[string]string{
		"round":         "round",
		" Single-Double": "single_double",
		"MY-STYLE":      "my_style",
	}
	for in, want := range tests {
		if got := CanonicalName(in); got != want {
			t.Errorf("CanonicalName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLookupBuiltins(t *testing.T) {
	for _, p := range Presets() {
		s, ok := Lookup(p.String())
		if !ok {
			t.Errorf("Lookup(%q) not found", p)
			continue
		}
		want, _ := p.Resolve()
		if s != want {
			t.Errorf("Lookup(%q) = %+v, want %+v", p, s, want)
		}
	}
	if _, ok := Lookup("Single-Double"); !ok {
		t.Error("Lookup(Single-Double) should normalize to single_double")
	}
}

func TestRegisterCustom(t *testing.T) {
	defer unregister("dots")
	dots := Set{Horizontal: ".", Vertical: ":", TopLeft: ".", TopRight: ".", BottomLeft: "'", BottomRight: "'"}
	if err := Register("Dots", dots); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	got, err := Named("dots").Resolve()
	if err != nil {
		t.Fatalf("Named(dots).Resolve() error: %v", err)
	}
	if got != dots {
		t.Errorf("Named(dots) = %+v, want %+v", got, dots)
	}

	found := false
	for _, n := range Names() {
		if n == "dots" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() = %v, missing dots", Names())
	}
}

func TestRegisterRejectsBuiltinName(t *testing.T) {
	s, _ := Single.Resolve()
	if err := Register("ROUND", s); err == nil {
		t.Error("Register(ROUND) should refuse to shadow a built-in")
	}
	got, _ := Lookup("round")
	want, _ := Round.Resolve()
	if got != want {
		t.Error("built-in round was overwritten")
	}
}

func TestRegisterRejectsInvalid(t *testing.T) {
	if err := Register("broken", Set{}); !errors.Is(err, ErrInvalidGlyph) {
		t.Errorf("Register(empty set) error = %v, want ErrInvalidGlyph", err)
	}
	if err := Register("  ", Set{}); err == nil {
		t.Error("Register with blank name should fail")
	}
}

func TestNamedUnknown(t *testing.T) {
	if _, err := Named("nope").Resolve(); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Named(nope).Resolve() error = %v, want ErrUnknownStyle", err)
	}
}

func TestNamesSortedWithBuiltins(t *testing.T) {
	names := Names()
	want := []string{"bold", "classic", "double", "double_single", "invisible", "round", "single", "single_double"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

// --- TOML ---

func TestLoadFromTOML(t *testing.T) {
	data := []byte(`
[styles.dots]
horizontal = "."
vertical = ":"
top_left = "."
top_right = "."
bottom_left = "'"
bottom_right = "'"
`)
	sets, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML error: %v", err)
	}
	want := map[string]Set{
		"dots": {Horizontal: ".", Vertical: ":", TopLeft: ".", TopRight: ".", BottomLeft: "'", BottomRight: "'"},
	}
	if diff := cmp.Diff(want, sets); diff != "" {
		t.Errorf("LoadFromTOML mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromTOMLInvalidGlyph(t *testing.T) {
	data := []byte(`
[styles.bad]
horizontal = "=="
vertical = "|"
top_left = "+"
top_right = "+"
bottom_left = "+"
bottom_right = "+"
`)
	if _, err := LoadFromTOML(data); !errors.Is(err, ErrInvalidGlyph) {
		t.Errorf("LoadFromTOML error = %v, want ErrInvalidGlyph", err)
	}
}

func TestLoadFromTOMLMalformed(t *testing.T) {
	if _, err := LoadFromTOML([]byte("[styles.x\n")); err == nil {
		t.Error("LoadFromTOML should fail on malformed TOML")
	}
}

func TestLoadFromTOMLEmpty(t *testing.T) {
	sets, err := LoadFromTOML(nil)
	if err != nil {
		t.Fatalf("LoadFromTOML(nil) error: %v", err)
	}
	if len(sets) != 0 {
		t.Errorf("LoadFromTOML(nil) = %v, want empty", sets)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	round, _ := Round.Resolve()
	in := map[string]Set{"my-round": round}
	data, err := SaveToTOML(in)
	if err != nil {
		t.Fatalf("SaveToTOML error: %v", err)
	}
	out, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML error: %v\n%s", err, data)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
