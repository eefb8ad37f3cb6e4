// boxcli draws text inside a terminal box.
//
// Each positional argument becomes one line of content. Without arguments
// the content is read from standard input when it is not a terminal.
//
// Usage:
//
//	boxcli [flags] [line ...]
//
// Flags:
//
//	-title string      Box title
//	-px int            Horizontal padding (overrides config)
//	-py int            Vertical padding (overrides config)
//	-style string      Glyph style: preset or custom style name
//	-align string      Content alignment: center|left|right
//	-title-pos string  Title position: inside|top|bottom
//	-color string      Border color: name, bright-name, 0-255 or #rrggbb
//	-color-mode string When to color the border: auto|always|never (default: auto)
//	-east-asian        Treat ambiguous-width characters as two columns
//	-config string     Path to configuration file (default: ~/.config/boxcli/config.toml)
//	-styles string     Path to a TOML file with extra glyph styles
//	-list-styles       Render a sample of every registered style and exit
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/boxcli/pkg/box"
	"gitlab.com/tinyland/lab/boxcli/pkg/color"
	"gitlab.com/tinyland/lab/boxcli/pkg/config"
	"gitlab.com/tinyland/lab/boxcli/pkg/glyph"
)

var (
	version = "1.0.0"
	commit  = "dev"
	date    = "unknown"
)

// sampleContent is rendered by -list-styles.
const sampleContent = "The quick brown fox\njumps over the lazy dog"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// cliFlags holds the parsed command line.
type cliFlags struct {
	configPath  string
	stylesPath  string
	title       string
	px          int
	py          int
	style       string
	align       string
	titlePos    string
	color       string
	colorMode   string
	eastAsian   bool
	listStyles  bool
	verbose     bool
	showVersion bool

	// set records which flags appeared on the command line.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	f := &cliFlags{set: map[string]bool{}}
	fs := flag.NewFlagSet("boxcli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&f.stylesPath, "styles", "", "Path to a TOML file with extra glyph styles")
	fs.StringVar(&f.title, "title", "", "Box title")
	fs.IntVar(&f.px, "px", 0, "Horizontal padding (overrides config)")
	fs.IntVar(&f.py, "py", 0, "Vertical padding (overrides config)")
	fs.StringVar(&f.style, "style", "", "Glyph style: preset or custom style name")
	fs.StringVar(&f.align, "align", "", "Content alignment: center|left|right")
	fs.StringVar(&f.titlePos, "title-pos", "", "Title position: inside|top|bottom")
	fs.StringVar(&f.color, "color", "", "Border color: name, bright-name, 0-255 or #rrggbb")
	fs.StringVar(&f.colorMode, "color-mode", "auto", "When to color the border: auto|always|never")
	fs.BoolVar(&f.eastAsian, "east-asian", false, "Treat ambiguous-width characters as two columns")
	fs.BoolVar(&f.listStyles, "list-styles", false, "Render a sample of every registered style and exit")
	fs.BoolVar(&f.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&f.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if f.showVersion {
		fmt.Fprintf(stdout, "boxcli %s (%s) built %s\n", version, commit, date)
		return 0
	}

	// Load configuration
	var cfg *config.Config
	cfgPath := f.configPath
	if cfgPath != "" {
		cfg, err = config.LoadFromFile(cfgPath)
	} else {
		cfg, cfgPath, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	// Extra styles go in first so the config file may refer to them.
	var styleCount int
	if f.stylesPath != "" {
		styleCount, err = registerStyleFile(f.stylesPath)
		if err != nil {
			fmt.Fprintf(stderr, "failed to load styles: %v\n", err)
			return 1
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	// Setup logging
	logLevel, _ := cfg.SlogLevel()
	if f.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	logger.Debug("config loaded", "path", cfgPath, "style", cfg.Box.Style, "styles", len(cfg.Styles))

	if err := cfg.RegisterStyles(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}
	if f.stylesPath != "" {
		logger.Debug("styles loaded", "path", f.stylesPath, "count", styleCount)
	}

	if f.eastAsian {
		cfg.Box.EastAsianWidth = true
	}

	painter, err := newPainter(f.colorMode, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	renderer, err := cfg.NewRenderer(painter)
	if err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	update, err := f.update()
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	if err := renderer.Update(update); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	if f.listStyles {
		return listStyles(renderer, stdout, stderr, logger)
	}

	content, err := readContent(rest, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read content: %v\n", err)
		return 1
	}

	out, err := renderer.Render(f.title, content)
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	rc := renderer.Config()
	logger.Debug("box rendered",
		"px", rc.Px, "py", rc.Py,
		"alignment", rc.Alignment, "title_position", rc.TitlePosition,
		"color", rc.Color, "bytes", len(out))

	fmt.Fprint(stdout, out)
	return 0
}

// update converts the flags that were set on the command line into a
// renderer update. Flags left at their defaults do not override the
// config file.
func (f *cliFlags) update() (box.Update, error) {
	var u box.Update
	if f.set["px"] {
		u.Px = &f.px
	}
	if f.set["py"] {
		u.Py = &f.py
	}
	if f.set["style"] {
		u.Style = glyph.Named(f.style)
	}
	if f.set["align"] {
		a, err := box.ParseAlignment(f.align)
		if err != nil {
			return box.Update{}, err
		}
		u.Alignment = &a
	}
	if f.set["title-pos"] {
		p, err := box.ParseTitlePosition(f.titlePos)
		if err != nil {
			return box.Update{}, err
		}
		u.TitlePosition = &p
	}
	if f.set["color"] {
		c, err := color.Parse(f.color)
		if err != nil {
			return box.Update{}, err
		}
		u.Color = &c
	}
	return u, nil
}

// newPainter returns a border painter for the given color mode. In auto
// mode the border is colored only when out is a terminal and NO_COLOR is
// unset.
func newPainter(mode string, out io.Writer) (color.Painter, error) {
	r := lipgloss.NewRenderer(out)
	switch mode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "auto":
		if os.Getenv("NO_COLOR") != "" || !isTTY(out) {
			r.SetColorProfile(termenv.Ascii)
		}
	default:
		return color.Painter{}, fmt.Errorf("unknown color mode: %s (supported: auto, always, never)", mode)
	}
	return color.NewPainter(r), nil
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readContent joins positional arguments as lines. Without arguments it
// reads stdin, unless stdin is an interactive terminal.
func readContent(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// registerStyleFile loads a TOML style file into the glyph registry and
// returns how many styles it defined.
func registerStyleFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	sets, err := glyph.LoadFromTOML(data)
	if err != nil {
		return 0, err
	}
	for name, s := range sets {
		if err := glyph.Register(name, s); err != nil {
			return 0, err
		}
	}
	return len(sets), nil
}

// listStyles renders a sample box for every registered style. The style
// name is used as the title.
func listStyles(r *box.Renderer, stdout, stderr io.Writer, logger *slog.Logger) int {
	for _, name := range glyph.Names() {
		if err := r.Update(box.Update{Style: glyph.Named(name)}); err != nil {
			fmt.Fprintf(stderr, "style %s: %v\n", name, err)
			return 1
		}
		out, err := r.Render(name, sampleContent)
		if err != nil {
			logger.Warn("style sample failed", "style", name, "err", err)
			continue
		}
		fmt.Fprintln(stdout, out)
	}
	return 0
}
