package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 50, cfg.LL1StepLimit)
	assert.Equal(t, 20, cfg.LR0StepLimit)
	assert.Equal(t, 10000, cfg.LR0StateCap)
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("ll1_step_limit = 5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.LL1StepLimit)
	assert.Equal(t, Default().LR0StepLimit, cfg.LR0StepLimit)
	assert.Equal(t, Default().LR0StateCap, cfg.LR0StateCap)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid = [ toml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
