// internal/config/write_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "moviemagic", "config.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	// Check for key sections
	assert.Contains(t, string(content), "[server]")
	assert.Contains(t, string(content), "[omdb]")
	assert.Contains(t, string(content), "${OMDB_API_KEY}")
}

func TestWriteDefault_CreatesDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "nested", "deep", "config.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	_, err = os.Stat(path)
	assert.False(t, os.IsNotExist(err), "file was not created")
}

func TestWriteDefault_DoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine"), 0644))

	err := WriteDefault(path)
	assert.ErrorIs(t, err, ErrExists)

	content, _ := os.ReadFile(path)
	assert.Equal(t, "# mine", string(content))
}

func TestConfig_Write(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 9000},
		OMDb:   OMDbConfig{URL: "https://www.omdbapi.com", APIKey: "abc123"},
	}

	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	err := cfg.Write(path)
	require.NoError(t, err, "Write failed")

	loaded, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", loaded.Server.Host)
	assert.Equal(t, 9000, loaded.Server.Port)
	assert.Equal(t, "abc123", loaded.OMDb.APIKey)
}
