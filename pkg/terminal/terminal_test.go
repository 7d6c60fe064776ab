package terminal_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements/pkg/terminal"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  terminal.Encoding
	}{
		{"none", terminal.None},
		{"xterm-8", terminal.Xterm8},
		{" XTERM-16 ", terminal.Xterm16},
		{"xterm-256", terminal.Xterm256},
		{"rgb", terminal.RGB},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := terminal.ParseEncoding(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := terminal.ParseEncoding("sepia")
		assert.ErrorIs(t, err, terminal.ErrUnknownEncoding)
	})

	t.Run("names round trip", func(t *testing.T) {
		t.Parallel()
		for _, name := range terminal.Encodings() {
			e, err := terminal.ParseEncoding(name)
			require.NoError(t, err)
			assert.Equal(t, name, e.String())
		}
	})
}

func TestSupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		goos string
		want []terminal.Encoding
	}{
		{"no TERM", nil, "linux", []terminal.Encoding{terminal.None}},
		{"xterm", map[string]string{"TERM": "xterm"}, "linux", []terminal.Encoding{terminal.Xterm8, terminal.None}},
		{
			"xterm-16color", map[string]string{"TERM": "xterm-16color"}, "darwin",
			[]terminal.Encoding{terminal.Xterm16, terminal.Xterm8, terminal.None},
		},
		{
			"truecolor", map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"}, "linux",
			[]terminal.Encoding{terminal.RGB, terminal.Xterm256, terminal.Xterm16, terminal.Xterm8, terminal.None},
		},
		{"unknown TERM", map[string]string{"TERM": "vt100"}, "linux", []terminal.Encoding{terminal.None}},
		{"classic console", map[string]string{"TERM": "xterm"}, "windows", []terminal.Encoding{terminal.None}},
		{
			"windows terminal", map[string]string{"WT_SESSION": "1"}, "windows",
			[]terminal.Encoding{terminal.RGB, terminal.Xterm256, terminal.Xterm16, terminal.Xterm8, terminal.None},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, terminal.Supported(env(tt.vars), tt.goos))
		})
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, terminal.None, terminal.Detect(env(map[string]string{
		"TERM": "xterm-256color", "COLORTERM": "24bit", "NO_COLOR": "1",
	})))
	assert.Equal(t, terminal.None, terminal.Detect(env(nil)))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("redirected output has no colors", func(t *testing.T) {
		t.Parallel()
		r, w, err := os.Pipe()
		require.NoError(t, err)
		t.Cleanup(func() {
			r.Close()
			w.Close()
		})

		term := terminal.New(
			terminal.WithOutput(w),
			terminal.WithEnv(env(map[string]string{"TERM": "xterm-256color"})),
		)
		assert.Equal(t, terminal.None, term.Encoding())
	})

	t.Run("forced encoding", func(t *testing.T) {
		t.Parallel()
		term := terminal.New(terminal.WithEncoding(terminal.Xterm256))
		assert.Equal(t, terminal.Xterm256, term.Encoding())
	})
}

func TestTerminal_StyleDiff(t *testing.T) {
	t.Parallel()

	diff := "--- expected\n+++ actual\n@@ -1,2 +1,2 @@\n a\n-c\n+b"

	t.Run("none leaves the diff unchanged", func(t *testing.T) {
		t.Parallel()
		term := terminal.New(terminal.WithEncoding(terminal.None))
		assert.Equal(t, diff, term.StyleDiff(diff))
	})

	for _, e := range []terminal.Encoding{terminal.Xterm8, terminal.Xterm16, terminal.Xterm256, terminal.RGB} {
		t.Run(e.String(), func(t *testing.T) {
			t.Parallel()
			term := terminal.New(terminal.WithEncoding(e))
			styled := term.StyleDiff(diff)

			assert.NotEqual(t, diff, styled)
			assert.Contains(t, styled, "--- expected\n+++ actual\n")
			assert.Contains(t, styled, "\n a\n")
			assert.Contains(t, styled, "\x1b[")
			assert.Contains(t, styled, "-c")
			assert.Contains(t, styled, "+b")
		})
	}
}
