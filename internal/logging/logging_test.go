package logging_test

import (
	"testing"

	"github.com/on-the-ground/policy_ive_go/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	l, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, l)

	l, err = logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, l)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_RespectsLevel(t *testing.T) {
	logger, err := logging.New("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestInstall_RestoresGlobal(t *testing.T) {
	before := zap.L()
	restore := logging.Install(logging.NewConsole(zapcore.DebugLevel))
	assert.NotSame(t, before, zap.L())
	restore()
	assert.Same(t, before, zap.L())
}
