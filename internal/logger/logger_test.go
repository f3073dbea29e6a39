package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		level      string
		wantErr    bool
	}{
		{name: "JSON output mode", jsonOutput: true, level: "info"},
		{name: "Console output mode", jsonOutput: false, level: "debug"},
		{name: "Default level", jsonOutput: false, level: ""},
		{name: "Bad level", jsonOutput: true, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := zap.NewNop().Sugar()
			Logger = prev

			err := Initialize(tt.jsonOutput, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Same(t, prev, Logger, "failed Initialize must keep the previous logger")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, Logger)
			Cleanup()
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"":       zapcore.InfoLevel,
		"DEBUG":  zapcore.DebugLevel,
		" warn ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLoggerFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	ctx := WithComponent(WithRunID(context.Background(), "run-1"), "compute")
	LoggerFromContext(ctx).Infow("done")
	LoggerFromContext(context.Background()).Infow("bare")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]interface{}{FieldRunID: "run-1", FieldComponent: "compute"}, entries[0].ContextMap())
	assert.Empty(t, entries[1].ContextMap())
}

func TestComponentLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	ComponentLogger("sro").Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sro", logs.All()[0].LoggerName)
}
