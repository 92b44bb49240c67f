package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGooseLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := gooseLogger{log: zap.New(core).Sugar().With(zap.String("component", "migrations"))}

	l.Printf("OK   %s (%v)", "00001_init.sql", "1.2ms")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "OK   00001_init.sql (1.2ms)", entries[0].Message)
	assert.Equal(t, "migrations", entries[0].ContextMap()["component"])
}
