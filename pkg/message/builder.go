package message

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/requirements/pkg/render"
)

// Entry is a rendered context pair.
type Entry struct {
	Key   string
	Value string
}

type pair struct {
	key   string
	value any
}

// Builder builds a failure message.
type Builder struct {
	mappers *render.Mappers
	summary string
	context []pair
	diff    string
}

// NewBuilder returns a builder for the given sentence.
// Panics if summary is empty or does not end with a dot.
func NewBuilder(mappers *render.Mappers, summary string) *Builder {
	if summary == "" || !strings.HasSuffix(summary, ".") {
		panic(fmt.Errorf("%w: %q", ErrInvalidSummary, summary))
	}
	if mappers == nil {
		mappers = render.Default()
	}
	return &Builder{mappers: mappers, summary: summary}
}

// WithContext adds a context pair, replacing any previous value for key.
func (b *Builder) WithContext(key string, value any) *Builder {
	if key == "" {
		panic(ErrEmptyContextKey)
	}
	for i := range b.context {
		if b.context[i].key == key {
			b.context[i].value = value
			return b
		}
	}
	b.context = append(b.context, pair{key: key, value: value})
	return b
}

// WithContextIfAbsent adds a context pair unless key is already present.
func (b *Builder) WithContextIfAbsent(key string, value any) *Builder {
	if b.HasContext(key) {
		return b
	}
	return b.WithContext(key, value)
}

// HasContext reports whether key is present.
func (b *Builder) HasContext(key string) bool {
	for _, p := range b.context {
		if p.key == key {
			return true
		}
	}
	return false
}

// WithDiff attaches a diff section. Empty diffs are ignored.
func (b *Builder) WithDiff(diff string) *Builder {
	b.diff = diff
	return b
}

// Summary returns the sentence describing the failure.
func (b *Builder) Summary() string {
	return b.summary
}

// Context returns the rendered context pairs in insertion order.
func (b *Builder) Context() []Entry {
	entries := make([]Entry, len(b.context))
	for i, p := range b.context {
		entries[i] = Entry{Key: p.key, Value: b.mappers.String(p.value)}
	}
	return entries
}

// Diff returns the diff section, if any.
func (b *Builder) Diff() string {
	return b.diff
}

func (b *Builder) String() string {
	return Format(b.summary, b.Context(), b.diff)
}

// Format lays out a sentence, its context and an optional diff.
func Format(summary string, context []Entry, diff string) string {
	var sb strings.Builder
	sb.WriteString(summary)

	width := 0
	for _, e := range context {
		width = max(width, utf8.RuneCountInString(e.Key))
	}
	for _, e := range context {
		sb.WriteByte('\n')
		sb.WriteString(e.Key)
		sb.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(e.Key)))
		sb.WriteString(": ")
		sb.WriteString(e.Value)
	}

	if diff != "" {
		sb.WriteString("\n\n")
		sb.WriteString(diff)
	}
	return sb.String()
}

// QuoteName quotes the name of a value unless it refers to an expression such
// as "len(name)" or "user.email".
func QuoteName(name string) string {
	if strings.ContainsAny(name, ".(") {
		return name
	}
	return `"` + name + `"`
}
