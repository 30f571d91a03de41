package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LINKEDIN_EMAIL", "LINKEDIN_PASSWORD", "DATABASE_URL",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "PORT",
		"REQUEST_DELAY_SECONDS", "HEADLESS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(writeConfig(t, ""))
	require.NoError(t, err)

	assert.True(t, cfg.Headless)
	assert.Equal(t, 2, cfg.RequestDelay)
	assert.Equal(t, 10, cfg.RequestTimeout)
	assert.Equal(t, 50, cfg.MaxJobsPerRequest)
	assert.Equal(t, 5, cfg.RequestsPerMinute)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.True(t, cfg.Anonymous())
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(writeConfig(t, `
request_delay_seconds: 5
max_jobs_per_request: 25
target_skills:
  - Python
  - FastAPI
output_dir: /tmp/results
`))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.RequestDelay)
	assert.Equal(t, 25, cfg.MaxJobsPerRequest)
	assert.Equal(t, []string{"Python", "FastAPI"}, cfg.TargetSkills)
	assert.Equal(t, "/tmp/results", cfg.OutputDir)
}

func TestEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("LINKEDIN_EMAIL", "me@example.com")
	t.Setenv("LINKEDIN_PASSWORD", "hunter2")
	t.Setenv("PORT", "9090")
	t.Setenv("REQUEST_DELAY_SECONDS", "7")
	t.Setenv("HEADLESS", "false")

	cfg, err := LoadFrom(writeConfig(t, "request_delay_seconds: 2"))
	require.NoError(t, err)

	assert.Equal(t, "me@example.com", cfg.LinkedInEmail)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 7, cfg.RequestDelay)
	assert.False(t, cfg.Headless)
	assert.False(t, cfg.Anonymous())
}

func TestLoadFromMissingFileStillValid(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxJobsPerRequest)
}

func TestValidateRejectsPartialCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("LINKEDIN_EMAIL", "me@example.com")

	_, err := LoadFrom(writeConfig(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LINKEDIN_EMAIL and LINKEDIN_PASSWORD must be set together")
}

func TestValidateRejectsNegativeDelay(t *testing.T) {
	clearEnv(t)

	_, err := LoadFrom(writeConfig(t, "request_delay_seconds: -1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request_delay_seconds must not be negative")
}

func TestValidateRejectsPartialTelegram(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	_, err := LoadFrom(writeConfig(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together")
}
