package esig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/esig/pkg/esig"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := esig.NewZapLogger(zap.New(core))

	logger.Debug("request", map[string]interface{}{"method": "GET"})
	logger.Info("created", nil)
	logger.Warn("retrying", map[string]interface{}{"attempt": 2})
	logger.Error("failed", map[string]interface{}{"status": 500})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Empty(t, entries[1].Context)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, int64(2), entries[2].ContextMap()["attempt"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "failed", entries[3].Message)
}

func TestZapLogger_NilLogger(t *testing.T) {
	t.Parallel()

	logger := esig.NewZapLogger(nil)
	logger.Info("dropped", map[string]interface{}{"k": "v"})
	assert.NoError(t, logger.Sync())
}
