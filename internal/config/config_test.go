package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: "production"
jwt:
  secret: "file-secret"
  access_token_expiration: "30m"
logging:
  level: "debug"
  format: "json"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "30m", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Defaults survive for values the file omits
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "attendance", cfg.Database.DBName)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
`)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-only-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-only-secret", cfg.JWT.Secret)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_RequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "JWT secret")
}

func TestLoadConfig_RejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "s"
  access_token_expiration: "soon"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "attendance"
	cfg.Database.SSLMode = "require"

	assert.Equal(t,
		"postgres://app:pw@db.internal:5433/attendance?sslmode=require",
		cfg.PostgresConnectionString())
}
