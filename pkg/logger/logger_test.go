package logger

import (
	"interview_coach_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLevelFor(t *testing.T) {
	cases := []struct {
		mode, level string
		want        zap.AtomicLevel
	}{
		{"debug", "", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"release", "", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"debug", "warn", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"release", "verbose", zap.NewAtomicLevelAt(zap.InfoLevel)},
	}
	for _, tc := range cases {
		cfg := &config.Config{Server: config.ServerConfig{Mode: tc.mode}, Log: config.LogConfig{Level: tc.level}}
		assert.Equal(t, tc.want.Level(), levelFor(cfg), "mode=%s level=%s", tc.mode, tc.level)
	}
}

func TestSetLevelHotReload(t *testing.T) {
	InitLogger(&config.Config{Server: config.ServerConfig{Mode: "release"}})
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))

	SetLevel(&config.Config{Log: config.LogConfig{Level: "debug"}})
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	SetLevel(&config.Config{Log: config.LogConfig{Level: "error"}})
	assert.False(t, Log.Core().Enabled(zap.WarnLevel))
}
