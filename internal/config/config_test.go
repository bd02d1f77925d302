package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://www.aladin.co.kr/ttb/api", cfg.Aladin.BaseURL)
	assert.False(t, cfg.Aladin.UseProxy)
	assert.Equal(t, 30, cfg.Aladin.MaxResults)
	assert.Equal(t, 24, cfg.Cache.TTLHours)
	assert.Equal(t, 300, cfg.Cache.MemoryEntries)
	assert.Equal(t, "bookroad/1.0", cfg.Cache.UserAgent)
	assert.InDelta(t, 5.0, cfg.Cache.RequestsPerSecond, 0.001)
	assert.Equal(t, 5, cfg.Cache.Burst)
	assert.Equal(t, 6, cfg.Roadmap.BestsellerPages)
	assert.Equal(t, 50, cfg.Roadmap.PageSize)
	assert.Equal(t, 24, cfg.Roadmap.ExtendedLimit)
	assert.Equal(t, 10, cfg.Roadmap.PerStepLimit)
	assert.Equal(t, "bookroad-library.db", cfg.Library.Path)
	assert.Equal(t, 8787, cfg.Proxy.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	chdirTemp(t)

	yaml := `
aladin:
  ttb_key: ttbtest001
  use_proxy: true
  proxy_base_url: http://localhost:8787
log:
  level: debug
  format: console
proxy:
  port: 9090
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ttbtest001", cfg.Aladin.TTBKey)
	assert.True(t, cfg.Aladin.UseProxy)
	assert.Equal(t, "http://localhost:8787", cfg.Aladin.ProxyBaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Proxy.Port)
	// Defaults still apply for unset values
	assert.Equal(t, 6, cfg.Roadmap.BestsellerPages)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	chdirTemp(t)

	yaml := `
aladin:
  ttb_key: from-file
log:
  level: debug
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("BOOKROAD_ALADIN_TTB_KEY", "from-env")
	t.Setenv("BOOKROAD_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "from-env", cfg.Aladin.TTBKey)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("BOOKROAD_PROXY_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Proxy.Port)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults mirrors Load's defaults for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Aladin.MaxResults = 30
	cfg.Cache.TTLHours = 24
	cfg.Cache.MemoryEntries = 300
	cfg.Roadmap.BestsellerPages = 6
	cfg.Roadmap.PageSize = 50
	cfg.Library.Path = "bookroad-library.db"
	cfg.Proxy.Port = 8787
	return cfg
}

func TestValidateCatalog_WithKey(t *testing.T) {
	cfg := validDefaults()
	cfg.Aladin.TTBKey = "ttbtest001"

	assert.NoError(t, cfg.Validate("catalog"))
}

func TestValidateCatalog_WithProxy(t *testing.T) {
	cfg := validDefaults()
	cfg.Aladin.UseProxy = true
	cfg.Aladin.ProxyBaseURL = "http://localhost:8787"

	assert.NoError(t, cfg.Validate("catalog"))
}

func TestValidateCatalog_MissingKey(t *testing.T) {
	cfg := validDefaults()

	err := cfg.Validate("catalog")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "aladin.ttb_key is required")
}

func TestValidateCatalog_ProxyWithoutBase(t *testing.T) {
	cfg := validDefaults()
	cfg.Aladin.UseProxy = true

	err := cfg.Validate("catalog")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "aladin.proxy_base_url is required")
}

func TestValidateCatalog_Bounds(t *testing.T) {
	cfg := validDefaults()
	cfg.Aladin.TTBKey = "k"

	cfg.Aladin.MaxResults = 0
	err := cfg.Validate("catalog")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "aladin.max_results must be between 1 and 100")

	cfg.Aladin.MaxResults = 101
	assert.Error(t, cfg.Validate("catalog"))

	cfg.Aladin.MaxResults = 30
	cfg.Cache.TTLHours = 0
	err = cfg.Validate("catalog")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache.ttl_hours")
}

func TestValidateProxy(t *testing.T) {
	cfg := validDefaults()
	cfg.Aladin.TTBKey = "ttbtest001"
	assert.NoError(t, cfg.Validate("proxy"))

	cfg.Proxy.Port = 0
	err := cfg.Validate("proxy")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "proxy.port must be > 0")

	cfg.Proxy.Port = 8787
	cfg.Aladin.TTBKey = ""
	err = cfg.Validate("proxy")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "aladin.ttb_key is required")
}

func TestValidateLibrary(t *testing.T) {
	cfg := validDefaults()
	assert.NoError(t, cfg.Validate("library"))

	cfg.Library.Path = ""
	assert.Error(t, cfg.Validate("library"))
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
