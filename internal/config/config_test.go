package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "database.sqlite", cfg.Database.Path)
	assert.Equal(t, AuthStrategyHeader, cfg.Auth.Strategy)
	assert.Equal(t, "User-Id", cfg.Auth.Header)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	content := `
server:
  port: 8081
  cors_origins: ["http://localhost:5173"]
database:
  path: /tmp/tracker.db
auth:
  strategy: token
  token_secret: abc
  token_ttl: 2h
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "/tmp/tracker.db", cfg.Database.Path)
	assert.Equal(t, AuthStrategyToken, cfg.Auth.Strategy)
	assert.Equal(t, "abc", cfg.Auth.TokenSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "User-Id", cfg.Auth.Header, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("TRACKER_SERVER_PORT", "9090")
	t.Setenv("TRACKER_DATABASE_PATH", "env.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env.db", cfg.Database.Path)
}

func TestLoad_RejectsUnknownStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  strategy: magic\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Auth.Header = " "
	assert.Error(t, cfg.Validate())
}
