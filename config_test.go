package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte(`encoder: png
progress: true
no-trim: true
`), 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "png", cfg.EncoderName())
	require.True(t, cfg.Progress)
	require.True(t, cfg.NoTrim)
	require.False(t, cfg.NoColor)
}

func TestReadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config")

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, defaultEncoder, cfg.EncoderName())
	require.Equal(t, path, cfg.configPath)
}

func TestReadConfigEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, defaultEncoder, cfg.EncoderName())
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("encoder: [png"), 0644))

	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestConfigWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config")

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	cfg.Encoder = "png"
	cfg.NoColor = true
	require.NoError(t, cfg.Write())

	again, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "png", again.Encoder)
	require.True(t, again.NoColor)
	require.False(t, again.Progress)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestNilConfigEncoderName(t *testing.T) {
	var cfg *Config
	require.Equal(t, defaultEncoder, cfg.EncoderName())
}
