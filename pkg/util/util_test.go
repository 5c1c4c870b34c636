package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "gridsort.toml")
	data := `
[sort]
locale = "de"
dateFormat = "2006-01-02"
sortEmptyCells = true
schema = "grid.yaml"

[debug]
printRegistry = true
`
	require.NoError(t, os.WriteFile(fpath, []byte(data), 0644))

	conf, err := LoadConfig(fpath)
	require.NoError(t, err)
	assert.Equal(t, "de", conf.Sort.Locale)
	assert.Equal(t, "2006-01-02", conf.Sort.DateFormat)
	assert.True(t, conf.Sort.SortEmptyCells)
	assert.Equal(t, "grid.yaml", conf.Sort.Schema)
	assert.True(t, conf.Debug.PrintRegistry)
	assert.False(t, conf.Debug.PrintConfig)
	//untouched keys keep their defaults
	assert.Equal(t, "info", conf.Debug.LogLevel)
}

func TestLoadConfig_missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
}

func TestFindFile(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir2, "a.toml"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir1, "a.toml"), 0755))

	fpath, ok := FindFile([]string{dir1, dir2}, "a.toml")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir2, "a.toml"), fpath)

	_, ok = FindFile([]string{dir1}, "b.toml")
	assert.False(t, ok)
}

func TestLogHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	old := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(old)

	Debug("d")
	Info("i", zap.String("k", "v"))
	Warn("w")
	Error("e", zap.Int("n", 1))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, "i", entries[1].Message)
	assert.Equal(t, "v", entries[1].ContextMap()["k"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestSetLogLevel(t *testing.T) {
	defer func() {
		require.NoError(t, SetLogLevel("info"))
	}()
	require.NoError(t, SetLogLevel("debug"))
	assert.True(t, logLevel.Enabled(zapcore.DebugLevel))
	assert.Error(t, SetLogLevel("loud"))
}
