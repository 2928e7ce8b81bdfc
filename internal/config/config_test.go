package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultMongoURI, cfg.MongoURI)
	assert.Equal(t, defaultCookieName, cfg.CookieName)
	assert.Equal(t, defaultTokenTTL, cfg.TokenTTL.Std())
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.SecureCookies())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	raw := `
port: 8080
env: production
mongo_db: stargaze_prod
token_ttl: 24h
allowed_origins:
  - stargaze.example
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "stargaze_prod", cfg.MongoDB)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL.Std())
	assert.False(t, cfg.IsDev())
	assert.True(t, cfg.SecureCookies())
	assert.Equal(t, []string{"stargaze.example"}, cfg.AllowedOrigins)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SG_PORT", "9090")
	t.Setenv("MONGODB_DB", "stargaze_test")
	t.Setenv("SG_ALLOWED_ORIGINS", "a.example, b.example")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "stargaze_test", cfg.MongoDB)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.AllowedOrigins)
}
