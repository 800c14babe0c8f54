package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	dev, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}
