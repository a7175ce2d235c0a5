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
  env: develop
  log:
    level: debug
http:
  port: 8080
directory:
  locale: es
  sessionTtl: 10m
notify:
  moderatorTokens: []
`

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("DIRECTORY_SESSIONTTL", "45m")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Directory)
	assert.Equal(t, 45*time.Minute, cfg.Directory.SessionTTL)
	assert.Equal(t, "es", cfg.Directory.Locale)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "es", cfg.Directory.Locale)
	assert.Equal(t, "America/Bogota", cfg.Directory.Timezone)
	assert.Equal(t, 10, cfg.Directory.RecentlyViewedMax)
	assert.Equal(t, "Gachetá", cfg.Directory.DefaultCity)
	assert.Equal(t, "251230", cfg.Directory.DefaultZipCode)
	assert.Equal(t, 5*time.Second, cfg.Promotions.RotationInterval)
	assert.Equal(t, "memory", cfg.Storage.Provider)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.GreaterOrEqual(t, cfg.Directory.MaxPageSize, cfg.Directory.PageSize)
}
