package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/saadjs/dayledger/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logging.ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, logging.ParseLevel(" warn "))
	assert.Equal(t, zapcore.ErrorLevel, logging.ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, logging.ParseLevel("verbose"))
}

func TestNewRespectsLevel(t *testing.T) {
	logger, err := logging.New("warn")
	require.NoError(t, err)
	defer logger.Sync()
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
