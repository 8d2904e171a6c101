// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		OMDb: OMDbConfig{
			URL:    "https://www.omdbapi.com",
			APIKey: "test-key",
		},
	}
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig().Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.OMDb.APIKey = ""
	errs := cfg.Validate()
	assert.True(t, containsErrorBoth(errs, "omdb", "api_key"), "expected api_key error, got %v", errs)
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.port"), "expected port error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Server.LogLevel = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log_level"), "expected log_level error, got %v", errs)
}

func TestValidate_LogLevelCaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.Server.LogLevel = "DEBUG"
	assert.Empty(t, cfg.Validate())
}

func TestValidate_InvalidOMDbURL(t *testing.T) {
	for _, u := range []string{"not a url", "ftp://omdb.example", "https://"} {
		cfg := validConfig()
		cfg.OMDb.URL = u
		errs := cfg.Validate()
		assert.True(t, containsError(errs, "omdb.url"), "expected omdb.url error for %q, got %v", u, errs)
	}
}

func TestValidate_NegativeDurations(t *testing.T) {
	cfg := validConfig()
	cfg.OMDb.Timeout = -time.Second
	cfg.Server.ShutdownTimeout = -time.Second
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "omdb.timeout"), "expected omdb.timeout error, got %v", errs)
	assert.True(t, containsError(errs, "server.shutdown_timeout"), "expected shutdown_timeout error, got %v", errs)
}

func TestValidate_EmptyOrigin(t *testing.T) {
	cfg := validConfig()
	cfg.CORS.AllowedOrigins = []string{"https://app.example", " "}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cors.allowed_origins[1]"), "expected origin error, got %v", errs)
}

// Helper functions to check for errors containing specific strings
func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func containsErrorBoth(errs []string, substr1, substr2 string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr1) && strings.Contains(e, substr2) {
			return true
		}
	}
	return false
}
