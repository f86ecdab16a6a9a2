package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "M", cfg.Encoder.ErrorCorrection)
	assert.Equal(t, 10, cfg.Encoder.BoxSize)
	assert.Equal(t, 4, cfg.Encoder.Border)
	assert.Zero(t, cfg.History.MaxEntries)
	assert.False(t, cfg.History.Disabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Encoder, cfg.Encoder)
	assert.Equal(t, dataDir, cfg.DataDir)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoder:\n  error_correction: H\n"), 0o644))

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "H", cfg.Encoder.ErrorCorrection)
	assert.Equal(t, 10, cfg.Encoder.BoxSize, "unset values fall back to defaults")
	assert.Equal(t, 4, cfg.Encoder.Border)
}

func TestLoad_FullFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `encoder:
  error_correction: Q
  box_size: 6
  border: 2
history:
  max_entries: 50
  disabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "Q", cfg.Encoder.ErrorCorrection)
	assert.Equal(t, 6, cfg.Encoder.BoxSize)
	assert.Equal(t, 2, cfg.Encoder.Border)
	assert.Equal(t, 50, cfg.History.MaxEntries)
	assert.True(t, cfg.History.Disabled)
}

func TestLoad_ExplicitZeroBorder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoder:\n  border: 0\n"), 0o644))

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Encoder.Border, "an explicit zero quiet zone is kept, not reset to the default")
	assert.Equal(t, 10, cfg.Encoder.BoxSize)
}

func TestLoad_ExplicitZeroBoxSizeRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoder:\n  box_size: 0\n"), 0o644))

	_, err := Load(path, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "box_size")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoder: [not a map"), 0o644))

	_, err := Load(path, dir)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"lowercase level accepted", func(c *Config) { c.Encoder.ErrorCorrection = "q" }, false},
		{"bad level", func(c *Config) { c.Encoder.ErrorCorrection = "X" }, true},
		{"zero box size", func(c *Config) { c.Encoder.BoxSize = 0 }, true},
		{"negative border", func(c *Config) { c.Encoder.Border = -1 }, true},
		{"negative retention", func(c *Config) { c.History.MaxEntries = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() error = %v, wantErr %v", err, tt.wantErr)
		})
	}
}

func TestValidateDeep(t *testing.T) {
	t.Run("missing config file is fine", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "nope.yaml")))
	})

	t.Run("config path is a directory", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, cfg.ValidateDeep(t.TempDir()))
	})

	t.Run("data dir is a file", func(t *testing.T) {
		cfg := DefaultConfig()
		file := filepath.Join(t.TempDir(), "data")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		cfg.DataDir = file
		assert.Error(t, cfg.ValidateDeep(""))
	})
}
