package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cafeteria/internal/logger"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, zerolog.InfoLevel, false)

	log.Debug().Msg("hidden")
	log.Info().Int("tray", 100).Msg("served")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "served", entry["message"])
	assert.EqualValues(t, 100, entry["tray"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, zerolog.DebugLevel, true)
	log.Warn().Msg("edge ignored")
	assert.Contains(t, buf.String(), "edge ignored")
	assert.Contains(t, buf.String(), "WRN")
}
