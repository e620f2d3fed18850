package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracklist/internal/config"
)

func TestNew_Fallback(t *testing.T) {
	var buf bytes.Buffer
	log, closeLog, err := New(config.LogConfig{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer closeLog()

	log.Info("hidden")
	log.WithField("path", "/d/x.td.yaml").Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=/d/x.td.yaml")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(config.LogConfig{Level: "debug", JSON: true}, &buf)
	require.NoError(t, err)

	log.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tracklist.log")
	log, closeLog, err := New(config.LogConfig{Level: "info", File: path}, nil)
	require.NoError(t, err)

	log.Info("to file")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "shouty"}, nil)
	assert.Error(t, err)
}
