package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"trace", logrus.TraceLevel},
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}

	for _, tc := range tests {
		log := NewLogger(tc.input)
		assert.Equal(t, tc.expected, log.GetLevel(), "Mismatch for input: %s", tc.input)
	}
}

func TestNewLoggerWithOutput_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput("info", &buf)

	log.WithField("port", 8080).Info("Server starting")
	log.Debug("suppressed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Server starting", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(8080), entry["port"])
}

func TestInit(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	Init("error")
	assert.Equal(t, logrus.ErrorLevel, Log.GetLevel())
}
