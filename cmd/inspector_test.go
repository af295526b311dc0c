package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sysinspector/internal/conf"
)

func TestInitializeLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.log")
	logger, err := initializeLogger(conf.Log{Level: "info", Path: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("partition read", zap.String("device", "/dev/sda1"))
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "partition read")
	assert.Contains(t, string(content), "/dev/sda1")
	assert.NotContains(t, string(content), "hidden")
}

func TestInitializeLoggerRejectsLevel(t *testing.T) {
	_, err := initializeLogger(conf.Log{Level: "loud", Path: "stderr"})
	assert.ErrorContains(t, err, "failed to parse log level")
}
