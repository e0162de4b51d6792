package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger tests creating a new logger
func TestNewLogger(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := NewLogger(tempDir)

	assert.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.file)

	logger.Close()
}

// TestNewLogger_InvalidPath tests creating logger with invalid path
func TestNewLogger_InvalidPath(t *testing.T) {
	logger, err := NewLogger("/proc/invalid/path/that/cannot/be/created")

	assert.Error(t, err)
	assert.Nil(t, logger)
}

// TestLogger_Levels tests that each level tag reaches the log file
func TestLogger_Levels(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := NewLogger(tempDir)
	require.NoError(t, err)

	logger.Info("info %d", 1)
	logger.Warn("warn %d", 2)
	logger.Error("error %d", 3)
	logger.Debug("debug %d", 4)
	logger.Info("multi %s %d %v", "arg", 7, true)
	require.NoError(t, logger.Close())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "fuzzmaster_"))

	content, err := os.ReadFile(filepath.Join(tempDir, entries[0].Name()))
	require.NoError(t, err)

	logText := string(content)
	assert.Contains(t, logText, "[INFO] info 1")
	assert.Contains(t, logText, "[WARN] warn 2")
	assert.Contains(t, logText, "[ERROR] error 3")
	assert.Contains(t, logText, "[DEBUG] debug 4")
	assert.Contains(t, logText, "[INFO] multi arg 7 true",
		"format verbs must expand before the line is assembled")
	assert.Contains(t, logText, "logger_test.go")
}
