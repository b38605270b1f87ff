package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		debug bool
		warn  bool
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}, true, true},
		{"InfoJSON", Config{Level: "info", Format: "json"}, false, true},
		{"Error", Config{Level: "error", Format: "json"}, false, false},
		{"UnknownLevelFallsBackToInfo", Config{Level: "loud"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warn, l.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestWithRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := WithRun(zap.New(core), "zzz", "run-1")
	l.Info("cooked")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "zzz", fields["title"])
	assert.Equal(t, "run-1", fields["run_id"])
}
