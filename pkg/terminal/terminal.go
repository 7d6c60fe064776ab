package terminal

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dmitrymomot/requirements/pkg/logger"
)

// Terminal is the output a program writes diagnostics to. It decides which
// colors, if any, are used to highlight diffs.
type Terminal struct {
	encoding Encoding
	removed  lipgloss.Style
	added    lipgloss.Style
	hunk     lipgloss.Style
}

type options struct {
	output   *os.File
	getenv   func(string) string
	encoding *Encoding
	logger   *slog.Logger
}

// Option configures a Terminal.
type Option func(*options)

// WithOutput sets the file whose terminal is inspected. Defaults to
// os.Stdout; nil is ignored.
func WithOutput(f *os.File) Option {
	return func(o *options) {
		if f != nil {
			o.output = f
		}
	}
}

// WithEnv replaces os.Getenv as the source of TERM, COLORTERM, NO_COLOR and
// WT_SESSION.
func WithEnv(getenv func(string) string) Option {
	return func(o *options) {
		if getenv != nil {
			o.getenv = getenv
		}
	}
}

// WithEncoding forces an encoding even if the terminal does not appear to
// support it or the output is redirected.
func WithEncoding(e Encoding) Option {
	return func(o *options) { o.encoding = &e }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New detects the best encoding for the output, unless one is forced.
func New(opts ...Option) *Terminal {
	o := &options{
		output: os.Stdout,
		getenv: os.Getenv,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	var encoding Encoding
	switch {
	case o.encoding != nil:
		encoding = *o.encoding
		o.logger.Debug("terminal encoding forced", slog.String("encoding", encoding.String()))
	case !isTerminal(o.output):
		encoding = None
		o.logger.Debug("output is not a terminal", slog.String("encoding", encoding.String()))
	default:
		encoding = Detect(o.getenv)
		o.logger.Debug("terminal encoding detected", slog.String("encoding", encoding.String()))
	}
	return newTerminal(encoding)
}

// Detect returns the best encoding supported by the terminal described by
// getenv. A non-empty NO_COLOR disables colors.
func Detect(getenv func(string) string) Encoding {
	if getenv("NO_COLOR") != "" {
		return None
	}
	return Supported(getenv, runtime.GOOS)[0]
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newTerminal(encoding Encoding) *Terminal {
	t := &Terminal{encoding: encoding}
	p, ok := palettes[encoding]
	if !ok {
		return t
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(encoding.profile())
	style := func(color string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(color)).TabWidth(lipgloss.NoTabConversion)
	}
	t.removed = style(p.removed)
	t.added = style(p.added)
	t.hunk = style(p.hunk)
	return t
}

// Encoding returns the encoding in use.
func (t *Terminal) Encoding() Encoding {
	return t.encoding
}

// StyleDiff colors the lines of a unified diff: removals, additions and
// hunk headers. File headers and context lines are left as they are. With
// the None encoding the diff is returned unchanged.
func (t *Terminal) StyleDiff(diff string) string {
	if t.encoding == None || diff == "" {
		return diff
	}
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		case strings.HasPrefix(line, "@@"):
			lines[i] = t.hunk.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = t.removed.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = t.added.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
