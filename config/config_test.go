package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: libris
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
postgres:
  host: localhost
  port: 5432
  user: libris
  password: secret
  dbName: libris
  sslMode: disable
auth:
  bcryptCost: 12
openLibrary:
  baseUrl: https://openlibrary.org/api/books
  timeout: 10s
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))

	return dir
}

func TestLoadWithEnv(t *testing.T) {
	dir := writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "libris", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)

	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)

	require.NotNil(t, cfg.OpenLibrary)
	assert.Equal(t, 10*time.Second, cfg.OpenLibrary.Timeout)
}

func TestLoadWithEnv_EnvironmentOverrides(t *testing.T) {
	dir := writeTestConfig(t)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("POSTGRES_HOST", "db.internal")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("missing", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
