// Package terminal detects which ANSI colors the output terminal supports and
// uses them to highlight diffs in failure messages.
//
// Detection follows the conventions of common terminals: TERM selects the
// xterm palettes, COLORTERM=truecolor or 24bit adds 24-bit colors, and on
// Windows only Windows Terminal (WT_SESSION) is assumed to understand escape
// codes. Redirected output and a non-empty NO_COLOR disable colors. An
// encoding passed with WithEncoding overrides detection.
//
//	term := terminal.New()
//	validators := validator.New(validator.WithDiffStyler(term))
package terminal
