package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johannes-Berggren/repodash/internal/config"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func fileConfig(t *testing.T, level string) config.LoggingConfig {
	cfg := config.Default().Logging
	cfg.File = filepath.Join(t.TempDir(), "repodash.log")
	cfg.Level = level
	return cfg
}

func TestNewWithoutFileDiscards(t *testing.T) {
	log, err := New(config.LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, log)

	assert.False(t, log.Enabled())
	log.Info("dropped")
	assert.NoError(t, log.Close())
}

func TestNewWritesJSON(t *testing.T) {
	cfg := fileConfig(t, "info")
	log, err := New(cfg)
	require.NoError(t, err)

	log.Info("mounted", "rows", 3)
	log.V(1).Info("keystroke")
	log.Error(errors.New("boom"), "remount failed")
	require.NoError(t, log.Close())

	entries := readEntries(t, cfg.File)
	require.Len(t, entries, 2, "V(1) is below the info level")

	assert.Equal(t, "mounted", entries[0][MessageKey])
	assert.EqualValues(t, 3, entries[0]["rows"])
	assert.Contains(t, entries[0], TimeStampKey)
	assert.Contains(t, entries[0], GoVersionKey)

	assert.Equal(t, "remount failed", entries[1][MessageKey])
	assert.Equal(t, "boom", entries[1]["error"])
}

func TestDebugLevelEnablesVerbosity(t *testing.T) {
	cfg := fileConfig(t, "debug")
	log, err := New(cfg)
	require.NoError(t, err)

	log.V(1).Info("keystroke", "query", "tw")
	require.NoError(t, log.Close())

	entries := readEntries(t, cfg.File)
	require.Len(t, entries, 1)
	assert.Equal(t, "tw", entries[0]["query"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(fileConfig(t, "loud"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.WithValues("k", "v").Info("nothing")
	assert.NoError(t, log.Close())
}
