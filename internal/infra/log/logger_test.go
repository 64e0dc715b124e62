package logs

import (
	"context"
	"log/slog"
	"testing"

	"companion/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"Error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := parseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.level, level)
		})
	}
}

func TestNew_RespectsConfiguredLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "error"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelError))
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
}

func TestNew_DebugEnablesDebugLines(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.Env.Log.Level = "debug"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)

	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_UnknownLevelFails(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})

	assert.Error(t, err)
}
