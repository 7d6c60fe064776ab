package terminal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// Encoding is the set of ANSI escape codes a terminal understands, ordered
// from least to most capable.
type Encoding uint8

const (
	// None disables colors.
	None Encoding = iota
	// Xterm8 uses the 8 standard colors.
	Xterm8
	// Xterm16 adds the 8 bright colors.
	Xterm16
	// Xterm256 uses the xterm 256-color palette.
	Xterm256
	// RGB uses 24-bit colors.
	RGB
)

var encodingNames = [...]string{
	None:     "none",
	Xterm8:   "xterm-8",
	Xterm16:  "xterm-16",
	Xterm256: "xterm-256",
	RGB:      "rgb",
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return fmt.Sprintf("Encoding(%d)", e)
}

// Encodings returns the names of every encoding.
func Encodings() []string {
	return slices.Clone(encodingNames[:])
}

// ParseEncoding parses an encoding name such as "xterm-256". Case and
// surrounding whitespace are ignored.
func ParseEncoding(s string) (Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for e, n := range encodingNames {
		if n == name {
			return Encoding(e), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

func (e Encoding) profile() termenv.Profile {
	switch e {
	case Xterm8, Xterm16:
		return termenv.ANSI
	case Xterm256:
		return termenv.ANSI256
	case RGB:
		return termenv.TrueColor
	default:
		return termenv.Ascii
	}
}

// palette holds the colors of diff markers for one encoding.
type palette struct {
	removed, added, hunk string
}

var palettes = map[Encoding]palette{
	Xterm8:   {removed: "1", added: "2", hunk: "6"},
	Xterm16:  {removed: "9", added: "10", hunk: "14"},
	Xterm256: {removed: "160", added: "34", hunk: "38"},
	RGB:      {removed: "#D7263D", added: "#2E933C", hunk: "#1B98E0"},
}

// Supported returns the encodings supported by a terminal described by
// getenv on the operating system goos, most capable first. None is always
// supported.
func Supported(getenv func(string) string, goos string) []Encoding {
	if goos == "windows" {
		if getenv("WT_SESSION") == "" {
			return []Encoding{None}
		}
		return []Encoding{RGB, Xterm256, Xterm16, Xterm8, None}
	}

	var result []Encoding
	switch colorterm := getenv("COLORTERM"); colorterm {
	case "truecolor", "24bit":
		result = append(result, RGB)
	}
	switch getenv("TERM") {
	case "xterm-256color":
		result = append(result, Xterm256, Xterm16, Xterm8)
	case "xterm-16color":
		result = append(result, Xterm16, Xterm8)
	case "xterm", "term":
		result = append(result, Xterm8)
	}
	return append(result, None)
}
