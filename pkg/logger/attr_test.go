package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestName(t *testing.T) {
	attr := logger.Name("age")
	require.Equal(t, "name", attr.Key)
	assert.Equal(t, "age", attr.Value.String())

	assert.True(t, logger.Name("").Equal(slog.Attr{}))
}

func TestKind(t *testing.T) {
	attr := logger.Kind("null value")
	require.Equal(t, "kind", attr.Key)
	assert.Equal(t, "null value", attr.Value.Any())

	assert.True(t, logger.Kind(nil).Equal(slog.Attr{}))
}

func TestCount(t *testing.T) {
	attr := logger.Count(3)
	require.Equal(t, "count", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestComponent(t *testing.T) {
	attr := logger.Component("engine")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "engine", attr.Value.String())
}
