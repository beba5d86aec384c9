package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		config         *config.Config
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name:           "Valid log level info",
			config:         &config.Config{LogLvl: "info"},
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name:           "Valid log level warn",
			config:         &config.Config{LogLvl: "warn"},
			expectedLogLvl: zapcore.WarnLevel,
		},
		{
			name:           "Valid log level error",
			config:         &config.Config{LogLvl: "error"},
			expectedLogLvl: zapcore.ErrorLevel,
		},
		{
			name:           "Valid log level debug",
			config:         &config.Config{LogLvl: "debug"},
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name:          "Invalid log level",
			config:        &config.Config{LogLvl: "invalid"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
		})
	}
}

func TestInitLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figmant.log")

	err := InitLogger(&config.Config{LogLvl: "info", LogFile: path})
	require.NoError(t, err)

	zap.L().Info("ledger ready")
	_ = zap.L().Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ledger ready")
}
