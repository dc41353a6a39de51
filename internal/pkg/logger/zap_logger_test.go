package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("SESSION", "session issued", map[string]interface{}{"session_id": "abc"})
	l.Warn("SESSION", "malformed list", nil)
	l.Error("ADOPTION", "write failed", map[string]interface{}{"error": errors.New("boom").Error()})

	entries := logs.All()
	assert.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "SESSION", first["module"])
	assert.Equal(t, map[string]interface{}{"session_id": "abc"}, first["details"])

	// nil details are logged as an empty map, never as null
	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error_ref"])
}

func TestNopLogger(t *testing.T) {
	var l ILogger = NewNopLogger()
	l.Info("X", "ignored", nil)
	assert.NoError(t, l.Sync())
}
