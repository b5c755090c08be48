//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)
	t.Cleanup(func() { SetOutput(os.Stderr, zerolog.InfoLevel) })

	Info("plan solved", "run_id", "abc", "states", 12)

	lines := captureLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "plan solved", lines[0]["message"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "abc", lines[0]["run_id"])
	assert.EqualValues(t, 12, lines[0]["states"])
}

func TestOddArgumentGoesToDetail(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)
	t.Cleanup(func() { SetOutput(os.Stderr, zerolog.InfoLevel) })

	Error("failed to load catalog", errors.New("boom"))

	lines := captureLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "boom", lines[0]["detail"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.WarnLevel)
	t.Cleanup(func() { SetOutput(os.Stderr, zerolog.InfoLevel) })

	Debug("hidden")
	Info("hidden")
	Warn("shown", "k", "v")

	lines := captureLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
}
