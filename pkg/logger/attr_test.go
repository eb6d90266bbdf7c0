package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numguard/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestInput(t *testing.T) {
	v := "1.23"
	attr := logger.Input(&v)
	assert.Equal(t, "input", attr.Key)
	assert.Equal(t, "1.23", attr.Value.String())

	absent := logger.Input(nil)
	assert.Equal(t, "input_absent", absent.Key)
	assert.True(t, absent.Value.Bool())
}

func TestVerdictAndReason(t *testing.T) {
	assert.Equal(t, "valid", logger.Verdict(true).Key)
	assert.True(t, logger.Verdict(true).Value.Bool())

	assert.Equal(t, "scale_exceeded", logger.Reason("scale_exceeded").Value.String())
	assert.True(t, logger.Reason("").Equal(slog.Attr{}))
}

func TestRules(t *testing.T) {
	attr := logger.Rules(4, 2, true)
	require.Equal(t, "rules", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "precision", g[0].Key)
	assert.Equal(t, int64(4), g[0].Value.Int64())
	assert.Equal(t, "scale", g[1].Key)
	assert.Equal(t, "only_positive", g[2].Key)
	assert.True(t, g[2].Value.Bool())
}

func TestMiscAttrs(t *testing.T) {
	assert.Equal(t, "api", logger.Component("api").Value.String())
	assert.Equal(t, int64(3), logger.Count(3).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}
