package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"language-assistant/pkg/log"
)

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithCore(core)

	ctx := log.WithRequestID(context.Background(), "req-1")
	l.Infof(ctx, "hello %s", "world")
	l.Info(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "hello world", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestInitDoesNotPanicOnBadLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "loud", Encoding: "json"})
	assert.NotNil(t, l)
	l.Debug(context.Background(), "dropped below info")
}
