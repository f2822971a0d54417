package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, levelFromString("debug"))
	assert.Equal(t, zapcore.WarnLevel, levelFromString("warn"))
	assert.Equal(t, zapcore.ErrorLevel, levelFromString("error"))
	assert.Equal(t, zapcore.InfoLevel, levelFromString("info"))
	assert.Equal(t, zapcore.InfoLevel, levelFromString(""))
}

func TestNewStdout(t *testing.T) {
	logger, err := New(Options{Stdout: true, Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("hello")
}

func TestNewWithFileCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "celeritas.log")

	logger, err := New(Options{Filename: logPath, Level: "info"})
	require.NoError(t, err)
	logger.Info("hello file")
	require.NoError(t, logger.Sync())

	_, err = os.Stat(filepath.Dir(logPath))
	assert.NoError(t, err)
}

func TestNop(t *testing.T) {
	logger := Nop()
	require.NotNil(t, logger)
	logger.Info("discarded")
}
