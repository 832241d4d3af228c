package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	prev := GetLevel()
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(prev)
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel(" Warning "))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, INFO, ParseLevel("verbose"))
}

func TestLevelFiltering(t *testing.T) {
	buf := captureConsole(t)
	SetLevel(WARN)

	InfoC("commands", "hidden")
	WarnC("commands", "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] commands: shown")
}

func TestFieldsAreSorted(t *testing.T) {
	buf := captureConsole(t)
	SetLevel(DEBUG)

	DebugCF("bus", "queued", map[string]any{"z": 1, "a": "x"})

	assert.Contains(t, buf.String(), "{a=x, z=1}")
}

func TestFileLoggingWritesJSONLines(t *testing.T) {
	captureConsole(t)
	SetLevel(INFO)

	path := filepath.Join(t.TempDir(), "devdocs.log")
	require.NoError(t, EnableFileLogging(path))
	InfoCF("pico", "sent", map[string]any{"id": "abc"})
	DisableFileLogging()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "pico", entry.Component)
	assert.Equal(t, "sent", entry.Message)
	assert.Equal(t, "abc", entry.Fields["id"])
}
