package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	const path = "/etc/moviemagic/config.toml"

	t.Run("no problems", func(t *testing.T) {
		e := &ConfigError{Path: path}
		assert.False(t, e.HasErrors())
		assert.Empty(t, e.Error())
	})

	t.Run("missing variables", func(t *testing.T) {
		e := &ConfigError{Path: path, Missing: []string{"OMDB_API_KEY", "MM_PORT"}}
		assert.True(t, e.HasErrors())
		msg := e.Error()
		assert.Contains(t, msg, path+":")
		assert.Contains(t, msg, "missing environment variables: OMDB_API_KEY, MM_PORT")
		assert.NotContains(t, msg, "validation failed")
	})

	t.Run("validation errors listed one per line", func(t *testing.T) {
		e := &ConfigError{Path: path, Errors: []string{"server.port: must be 1-65535", "omdb.api_key: required"}}
		msg := e.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "\n  - server.port: must be 1-65535")
		assert.Contains(t, msg, "\n  - omdb.api_key: required")
	})

	t.Run("both sections", func(t *testing.T) {
		e := &ConfigError{Path: path, Missing: []string{"OMDB_API_KEY"}, Errors: []string{"cors.allowed_origins: empty"}}
		msg := e.Error()
		assert.Contains(t, msg, "missing environment variables")
		assert.Contains(t, msg, "validation failed")
	})
}
