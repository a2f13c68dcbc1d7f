package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textrogue/internal/config"
)

func TestLevelParsing(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"WARN":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"bogus": logrus.InfoLevel,
		"":      logrus.InfoLevel,
	}
	for in, want := range cases {
		log := New(config.LoggingConfig{Level: in}, nil)
		assert.Equal(t, want, log.GetLevel(), "level %q", in)
	}
}

func TestJSONToConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	log.WithField("level_no", 3).Info("level generated")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "level generated", rec["msg"])
	assert.Equal(t, float64(3), rec["level_no"])
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "textrogue.log")
	log := New(config.LoggingConfig{
		Level:         "info",
		FileEnabled:   true,
		FilePath:      path,
		FileMaxSizeMB: 1,
	}, nil)
	log.Info("session ended")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session ended")
}

func TestDiscardByDefault(t *testing.T) {
	log := New(config.LoggingConfig{Level: "info"}, nil)
	assert.NotPanics(t, func() { log.Info("nowhere") })
}
