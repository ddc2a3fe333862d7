package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Minute, cfg.SearchCacheTTL.Duration)
	assert.False(t, cfg.UseRedis())
}

func TestApplyEnvOverridesDefaults(t *testing.T) {
	cfg := Defaults()
	err := applyEnv(&cfg, envMap(map[string]string{
		"DB_DRIVER":            "postgres",
		"DB_DSN":               "postgres://tracker@localhost/tracker",
		"REFERENCE_DRIVER":     "csv",
		"REFERENCE_CSV":        "airports.csv",
		"SEARCH_CACHE_TTL":     "90s",
		"SEARCH_BURST":         "3",
		"CORS_ALLOWED_ORIGINS": "http://localhost:3000, https://map.example.com",
		"REDIS_HOST":           "cache",
	}))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "airports.csv", cfg.ReferenceCSV)
	assert.Equal(t, 90*time.Second, cfg.SearchCacheTTL.Duration)
	assert.Equal(t, 3, cfg.SearchBurst)
	assert.Equal(t, []string{"http://localhost:3000", "https://map.example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.UseRedis())
}

func TestApplyEnvRejectsBadNumbers(t *testing.T) {
	cfg := Defaults()
	assert.Error(t, applyEnv(&cfg, envMap(map[string]string{"SEARCH_CACHE_TTL": "soon"})))
	assert.Error(t, applyEnv(&cfg, envMap(map[string]string{"SEARCH_BURST": "many"})))
}

func TestValidateRejectsUnsupportedDrivers(t *testing.T) {
	cfg := Defaults()
	cfg.DBDriver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.ReferenceDriver = "csv"
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.DefaultTimezone = "Mars/Olympus_Mons"
	assert.Error(t, cfg.Validate())
}

func TestLoadReadsTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_addr = ":9090"
reference_driver = "mysql"
reference_dsn = "tracker:secret@tcp(localhost:3306)/airports"
search_cache_ttl = "5m"
default_timezone = "Europe/Vienna"
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "mysql", cfg.ReferenceDriver)
	assert.Equal(t, 5*time.Minute, cfg.SearchCacheTTL.Duration)
	assert.Equal(t, "Europe/Vienna", cfg.DefaultLocation().String())
}
