// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/research-catalog/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.LoggingConfig
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"default is warn", types.LoggingConfig{}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"debug console", types.LoggingConfig{Level: "debug"}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"error json", types.LoggingConfig{Level: "error", Format: "json"}, zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(types.LoggingConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
