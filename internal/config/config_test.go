package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Equal(t, 10*time.Second, cfg.Query.Timeout)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
log:
  level: debug
  console: false
query:
  timeout: 2s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Console)
	assert.Equal(t, 2*time.Second, cfg.Query.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\nlog:\n  level: debug\n")
	t.Setenv("DISKSPACE_SERVER_PORT", "7000")
	t.Setenv("DISKSPACE_QUERY_TIMEOUT", "500ms")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.Query.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("DISKSPACE_SERVER_PORT", "not-a-number")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "process environment")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero_port", func(c *Config) { c.Server.Port = 0 }, "out of range"},
		{"port_too_large", func(c *Config) { c.Server.Port = 70000 }, "out of range"},
		{"empty_host", func(c *Config) { c.Server.Host = " " }, "host is required"},
		{"zero_timeout", func(c *Config) { c.Query.Timeout = 0 }, "timeout must be positive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 8080}
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
}
