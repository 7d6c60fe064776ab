package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements/pkg/validator"
)

type profile struct {
	Name string
	Tags []string
}

type email string

func TestObjectValidator(t *testing.T) {
	t.Parallel()

	t.Run("null checks", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()
		var missing *profile

		validator.That(s, "missing", missing).IsNull()
		validator.That(s, "present", &profile{}).IsNull()

		f := onlyFailure(t, s)
		assert.Equal(t, "present", f.Name)
		assert.Equal(t, `"present" must be null.`, f.Summary)
	})

	t.Run("null value short-circuits", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()
		var missing *profile

		v := validator.That(s, "p", missing).IsNotNull().IsEqualTo(&profile{}).IsNotOneOf(nil)

		f := onlyFailure(t, s)
		assert.Equal(t, validator.KindNullValue, f.Kind)
		assert.Equal(t, `"p" may not be null.`, f.Message())
		assert.False(t, v.Active())
		_, err := v.Value()
		assert.ErrorIs(t, err, validator.ErrNoValue)
		assert.Nil(t, v.ValueOr(nil))
	})

	t.Run("structural equality", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()

		validator.That(s, "p", &profile{Name: "ada", Tags: []string{"x"}}).
			IsEqualTo(&profile{Name: "ada", Tags: []string{"x"}}).
			IsNotSameReferenceAs(&profile{Name: "ada"})

		assert.False(t, s.Failed(), s.Failures().Messages())
	})

	t.Run("structural difference carries a diff", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()

		validator.That(s, "p", profile{Name: "ada"}).IsEqualTo(profile{Name: "bob"}, "wanted")

		f := onlyFailure(t, s)
		assert.Equal(t, `"p" must be equal to "wanted".`, f.Summary)
		assert.Contains(t, f.Diff, "ada")
		assert.Contains(t, f.Diff, "bob")
	})

	t.Run("identity equality", func(t *testing.T) {
		t.Parallel()
		cfg := validator.DefaultConfiguration().WithEqualityMethod(validator.Identity)
		s := validator.New(validator.WithConfiguration(cfg)).Check()
		p := &profile{Name: "ada"}

		validator.That(s, "p", p).IsEqualTo(p).IsSameReferenceAs(p)
		require.False(t, s.Failed())

		validator.That(s, "q", p).IsEqualTo(&profile{Name: "ada"})
		assert.Equal(t, 1, s.Failures().Len())
	})

	t.Run("one of", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()

		validator.That(s, "color", "red").IsOneOf([]string{"red", "green"}).IsNotOneOf([]string{"blue"})
		validator.That(s, "size", "xl").IsOneOf([]string{"s", "m"}, "sizes")

		assert.Equal(t, "\"size\" must be one of \"sizes\".\nsize : \"xl\"\nsizes: [\"s\", \"m\"]", onlyFailure(t, s).Message())
	})
}

func TestNarrowing(t *testing.T) {
	t.Parallel()

	t.Run("deref", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()
		n := 7

		v := validator.Deref(validator.That(s, "n", &n)).IsEqualTo(7)

		value, err := v.Value()
		require.NoError(t, err)
		assert.Equal(t, 7, value)
		assert.False(t, s.Failed())
	})

	t.Run("deref of nil", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()
		var n *int

		source := validator.That(s, "n", n)
		v := validator.Deref(source).IsEqualTo(7)

		assert.Equal(t, validator.KindNullValue, onlyFailure(t, s).Kind)
		assert.False(t, v.Active())
		assert.False(t, source.Active())
	})

	t.Run("as string accepts named string types", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()
		var address any = email("ada@example.com")

		validator.AsString(validator.That(s, "email", address)).EndsWith("@example.com")

		assert.False(t, s.Failed(), s.Failures().Messages())
	})

	t.Run("as number follows pointers", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()
		n := 3
		var value any = &n

		validator.AsNumber[int](validator.That(s, "n", value)).IsPositive().IsLessThan(5)

		assert.False(t, s.Failed(), s.Failures().Messages())
	})

	t.Run("wrong type in state mode", func(t *testing.T) {
		t.Parallel()
		s := validator.New().CheckState()
		var value any = 3.5

		v := validator.AsSlice[string](validator.That(s, "tags", value)).IsNotEmpty()

		f := onlyFailure(t, s)
		assert.Equal(t, validator.KindInvariantViolation, f.Kind)
		assert.Equal(t, `"tags" must be of type []string.`, f.Summary)
		assert.False(t, v.Active())
	})

	t.Run("as slice", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()
		var value any = []string{"a", "b"}

		validator.AsSlice[string](validator.That(s, "tags", value)).ContainsExactly([]string{"b", "a"})

		assert.False(t, s.Failed(), s.Failures().Messages())
	})

	t.Run("as map", func(t *testing.T) {
		t.Parallel()
		s := validator.New().Check()
		var value any = map[string]int{"a": 1}

		validator.AsMap[string, int](validator.That(s, "m", value)).ContainsKey("a").HasSize(1)

		assert.False(t, s.Failed(), s.Failures().Messages())
	})
}
