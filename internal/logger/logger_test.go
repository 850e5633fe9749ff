package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/segyhp/travel-crm/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("customer_id", "c-1").Info("reminder built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "reminder built", entry["msg"])
	assert.Equal(t, "c-1", entry["customer_id"])
}

func TestNewWithOutput_FallbackLevelAndText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(config.LoggingConfig{Level: "loud", Format: "text"}, &buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
