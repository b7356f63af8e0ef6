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

func TestNopLogger(t *testing.T) {
	l := New()

	assert.NotPanics(t, func() {
		l.WithStr("path", "/dev/null").WithInt("bytes", 3).Info("write")
		l.Error("nothing")
	})
	assert.NoError(t, l.Close())
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hexrw.log")

	l := New()
	require.NoError(t, l.Init(path))

	l.WithStr("path", "target.bin").WithInt("bytes", 3).WithBool("rewound", true).Info("write")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "write", entry["message"])
	assert.Equal(t, "target.bin", entry["path"])
	assert.Equal(t, float64(3), entry["bytes"])
	assert.Equal(t, true, entry["rewound"])
	assert.Contains(t, entry, "time")
}

func TestWithDoesNotLeak(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexrw.log")

	l := New()
	require.NoError(t, l.Init(path))

	l.WithStr("op", "read").Info("first")
	l.Info("second")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"op":"read"`)
	assert.NotContains(t, lines[1], `"op"`)
}

func TestInitMultiWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexrw.log")
	mirror := &bytes.Buffer{}

	l := New()
	require.NoError(t, l.InitMultiWriter(mirror, path))

	l.WithAny("want", 16).Warn("short read")
	require.NoError(t, l.Close())

	assert.Contains(t, mirror.String(), "short read")
	assert.Contains(t, mirror.String(), "want=16")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"short read"`)
}

func TestInitMultiWriterNoFile(t *testing.T) {
	mirror := &bytes.Buffer{}

	l := New()
	require.NoError(t, l.InitMultiWriter(mirror, ""))

	l.Debug("open")
	assert.Contains(t, mirror.String(), "open")
	assert.NoError(t, l.Close())
}

func TestInitEmptyPath(t *testing.T) {
	assert.Error(t, New().Init(""))
}
