package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements/pkg/message"
	"github.com/dmitrymomot/requirements/pkg/render"
)

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid sentences", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { message.NewBuilder(nil, "") })
		assert.Panics(t, func() { message.NewBuilder(nil, "no trailing dot") })
	})

	t.Run("nil mappers fall back to defaults", func(t *testing.T) {
		t.Parallel()
		b := message.NewBuilder(nil, "Broken.").WithContext("value", "x")
		assert.Equal(t, "Broken.\nvalue: \"x\"", b.String())
	})
}

func TestBuilder_Context(t *testing.T) {
	t.Parallel()

	t.Run("aligns colons", func(t *testing.T) {
		t.Parallel()
		b := message.NewBuilder(render.Default(), `"actual" must be equal to "expected".`).
			WithContext("actual", 123).
			WithContext("expected", 456)

		assert.Equal(t, "\"actual\" must be equal to \"expected\".\nactual  : 123\nexpected: 456", b.String())
	})

	t.Run("replaces existing keys in place", func(t *testing.T) {
		t.Parallel()
		b := message.NewBuilder(nil, "Broken.").
			WithContext("a", 1).
			WithContext("b", 2).
			WithContext("a", 3)

		assert.Equal(t, []message.Entry{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}, b.Context())
	})

	t.Run("if absent keeps the first value", func(t *testing.T) {
		t.Parallel()
		b := message.NewBuilder(nil, "Broken.").
			WithContext("a", 1).
			WithContextIfAbsent("a", 2)

		assert.True(t, b.HasContext("a"))
		assert.Equal(t, "1", b.Context()[0].Value)
	})

	t.Run("empty key panics", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, message.ErrEmptyContextKey, func() {
			message.NewBuilder(nil, "Broken.").WithContext("", 1)
		})
	})

	t.Run("uses registered mappers", func(t *testing.T) {
		t.Parallel()
		mappers := render.Register(render.Default(), func(v int) string { return "#" })
		b := message.NewBuilder(mappers, "Broken.").WithContext("n", 7)
		assert.Equal(t, "Broken.\nn: #", b.String())
	})
}

func TestBuilder_Diff(t *testing.T) {
	t.Parallel()

	b := message.NewBuilder(nil, "Broken.").WithContext("a", 1).WithDiff("-x\n+y")
	assert.Equal(t, "Broken.\na: 1\n\n-x\n+y", b.String())
	assert.Equal(t, "-x\n+y", b.Diff())
}

func TestQuoteName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"actual"`, message.QuoteName("actual"))
	assert.Equal(t, "len(actual)", message.QuoteName("len(actual)"))
	assert.Equal(t, "user.email", message.QuoteName("user.email"))
}

func TestPluralizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pluralizer message.Pluralizer
		count      int
		expected   string
	}{
		{message.Elements, 0, "0 elements"},
		{message.Elements, 1, "1 element"},
		{message.Elements, 3, "3 elements"},
		{message.Characters, 1, "1 character"},
		{message.Entries, 2, "2 entries"},
		{message.Keys, 1, "1 key"},
		{message.Values, 5, "5 values"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.pluralizer.Count(tt.count))
		})
	}

	assert.Equal(t, "entries", message.Entries.Plural())
}

func TestPluralizer_EveryNounHasSingularForm(t *testing.T) {
	t.Parallel()

	for _, p := range []message.Pluralizer{
		message.Characters, message.Elements, message.Entries, message.Keys, message.Values,
	} {
		require.NotPanics(t, func() { p.Noun(1) })
		assert.NotEqual(t, p.Plural(), p.Noun(1))
		assert.Equal(t, p.Plural(), p.Noun(2))
	}
}
