package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestZerologLoggerFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(buf, zerolog.DebugLevel)

	log.Info("request handled",
		Field{"path", "/echo/abc"},
		Field{"status", 200},
		Field{"bytes", int64(42)},
		Field{"duration", 15 * time.Millisecond},
		Field{"error", errors.New("broken pipe")},
	)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "info", e["level"])
	assert.Equal(t, "request handled", e["message"])
	assert.Equal(t, "/echo/abc", e["path"])
	assert.Equal(t, float64(200), e["status"])
	assert.Equal(t, float64(42), e["bytes"])
	assert.Equal(t, "broken pipe", e["error"])
	assert.Contains(t, e, "time")
}

func TestZerologLoggerLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(buf, zerolog.WarnLevel)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestZerologLoggerWith(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(buf, zerolog.InfoLevel).With(Field{"conn_id", "abc123"})

	log.Info("one")
	log.Error("two")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "abc123", e["conn_id"])
	}
}

func TestLongValuesAreTruncated(t *testing.T) {
	buf := &bytes.Buffer{}
	NewLogger(buf, zerolog.InfoLevel).Info("long", Field{"agent", strings.Repeat("x", 500)})

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	agent := entries[0]["agent"].(string)
	assert.True(t, strings.HasSuffix(agent, "...[truncated]"))
	assert.Less(t, len(agent), 200)
}

func TestNullLogger(t *testing.T) {
	var log Logger = &NullLogger{}
	assert.NotPanics(t, func() {
		log.With(Field{"k", "v"}).Error("nothing", Field{"x", 1})
	})
}
