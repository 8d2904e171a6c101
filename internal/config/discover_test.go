package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	// Clear XDG var to test default
	t.Setenv("XDG_CONFIG_HOME", "")

	path := DefaultPath()
	assert.Contains(t, path, ".config/moviemagic/config.toml")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	path := DefaultPath()
	assert.Equal(t, "/custom/config/moviemagic/config.toml", path)
}

func TestDiscover_Explicit(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "explicit.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[server]"), 0644))

	// Explicit path beats the env var
	t.Setenv(EnvConfigPath, "/nonexistent/config.toml")

	path, err := Discover(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_ExplicitMissing(t *testing.T) {
	_, err := Discover("/nonexistent/explicit.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/explicit.toml")
}

func TestDiscover_EnvVar(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "custom.toml")
	err := os.WriteFile(cfgPath, []byte("[server]"), 0644)
	require.NoError(t, err, "failed to create test config")

	t.Setenv(EnvConfigPath, cfgPath)

	path, err := Discover("")
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_EnvVar_NotFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "/nonexistent/config.toml")

	_, err := Discover("")
	require.Error(t, err, "expected error for missing MOVIEMAGIC_CONFIG")
	assert.Contains(t, err.Error(), EnvConfigPath)
}

func TestDiscover_CurrentDir(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")
	defer func() {
		err := os.Chdir(origDir)
		assert.NoError(t, err, "failed to restore working directory")
	}()

	t.Setenv(EnvConfigPath, "")

	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	err = os.WriteFile(cfgPath, []byte("[server]"), 0644)
	require.NoError(t, err, "failed to create test config")
	err = os.Chdir(tmp)
	require.NoError(t, err, "failed to change directory")

	path, err := Discover("")
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(path))
}

func TestDiscover_NotFound(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")
	defer func() {
		err := os.Chdir(origDir)
		assert.NoError(t, err, "failed to restore working directory")
	}()

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")

	tmp := t.TempDir() // Empty temp dir
	err = os.Chdir(tmp)
	require.NoError(t, err, "failed to change directory")

	_, err = Discover("")
	require.Error(t, err, "expected error when no config found")
	assert.Contains(t, err.Error(), "config not found")
}
