package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("JWT_SECRET", "test-secret")
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.AuthResolveTimeout)
	assert.Equal(t, "ht_session", cfg.Auth.CookieName)
	assert.Equal(t, "/login", cfg.Auth.LoginPath)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.False(t, cfg.Server.TrustProxyHeaders)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("JWT_SECRET", "")
	chdir(t, t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: "9090"
db:
  host: db.internal
  name: tracker
auth:
  jwt_secret: from-file
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "healthtracker:healthtracker_pass@tcp(db.internal:3306)/tracker?parseTime=true&charset=utf8mb4", cfg.DSN())
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("JWT_SECRET", "x")

	_, err := Load()
	require.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}
