package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  database: ":memory:"
auth:
  jwt:
    secret: file-secret
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "sqlite", cfg.Database.GetDriver())
	assert.Equal(t, "file-secret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 20, cfg.Auth.JWT.AccessExpMinutes)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_ReturnsIndependentConfigs(t *testing.T) {
	first, err := Load("", writeConfig(t, "auth:\n  jwt:\n    secret: first-secret\n"))
	require.NoError(t, err)
	second, err := Load("", writeConfig(t, "auth:\n  jwt:\n    secret: second-secret\n"))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "first-secret", first.Auth.JWT.Secret)
	assert.Equal(t, "second-secret", second.Auth.JWT.Secret)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt:
    secret: file-secret
`)
	t.Setenv("HELPDESK_AUTH_JWT_SECRET", "env-secret")
	t.Setenv("HELPDESK_AUTH_JWT_ACCESS_EXP_MINUTES", "5")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 5, cfg.Auth.JWT.AccessExpMinutes)
}

func TestLoad_EnvParameterSetsMode(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt:
    secret: a-real-secret
`)

	cfg, err := Load("test", path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Server.Mode)
}

func TestLoad_RejectsDefaultSecretInRelease(t *testing.T) {
	path := writeConfig(t, "server:\n  mode: release\n")

	_, err := Load("", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwt.secret")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty secret", func(c *Config) { c.Auth.JWT.Secret = "" }, true},
		{"zero ttl", func(c *Config) { c.Auth.JWT.AccessExpMinutes = 0 }, true},
		{"default secret in debug", func(c *Config) { c.Auth.JWT.Secret = defaultJWTSecret }, false},
		{"default secret in release", func(c *Config) {
			c.Auth.JWT.Secret = defaultJWTSecret
			c.Server.Mode = "release"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Server.Mode = "debug"
			cfg.Auth.JWT.Secret = "s3cret"
			cfg.Auth.JWT.AccessExpMinutes = 20
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
