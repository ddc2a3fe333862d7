package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Values come from, in increasing
// precedence: defaults, the TOML file named by CONFIG_FILE, a .env file, and
// the process environment.
type Config struct {
	AppEnv   string `toml:"app_env"`
	HTTPAddr string `toml:"http_addr"`

	DBDriver string `toml:"db_driver"`
	DBDSN    string `toml:"db_dsn"`

	ReferenceDriver string `toml:"reference_driver"`
	ReferenceDSN    string `toml:"reference_dsn"`
	ReferenceCSV    string `toml:"reference_csv"`

	DefaultTimezone string `toml:"default_timezone"`

	RedisHost     string `toml:"redis_host"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"redis_password"`

	SearchCacheTTL   Duration `toml:"search_cache_ttl"`
	SearchRatePerSec float64  `toml:"search_rate_per_sec"`
	SearchBurst      int      `toml:"search_burst"`

	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
}

// Duration lets TOML files use strings such as "10m"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Defaults returns the configuration used when nothing is set
func Defaults() Config {
	return Config{
		AppEnv:             "development",
		HTTPAddr:           ":8080",
		DBDriver:           "sqlite",
		DBDSN:              "wayfarer.db",
		ReferenceDriver:    "sqlite3",
		ReferenceDSN:       "global_airports_sqlite.db",
		SearchCacheTTL:     Duration{10 * time.Minute},
		SearchRatePerSec:   5,
		SearchBurst:        10,
		CORSAllowedOrigins: []string{"*"},
	}
}

// Load builds the configuration. A missing .env is fine; a CONFIG_FILE that
// is set but unreadable is an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("APP_ENV", &cfg.AppEnv)
	str("HTTP_ADDR", &cfg.HTTPAddr)
	str("DB_DRIVER", &cfg.DBDriver)
	str("DB_DSN", &cfg.DBDSN)
	str("REFERENCE_DRIVER", &cfg.ReferenceDriver)
	str("REFERENCE_DSN", &cfg.ReferenceDSN)
	str("REFERENCE_CSV", &cfg.ReferenceCSV)
	str("DEFAULT_TIMEZONE", &cfg.DefaultTimezone)
	str("REDIS_HOST", &cfg.RedisHost)
	str("REDIS_PORT", &cfg.RedisPort)
	str("REDIS_PASSWORD", &cfg.RedisPassword)

	if v, ok := lookup("SEARCH_CACHE_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SEARCH_CACHE_TTL %q: %w", v, err)
		}
		cfg.SearchCacheTTL = Duration{d}
	}
	if v, ok := lookup("SEARCH_RATE_PER_SEC"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid SEARCH_RATE_PER_SEC %q: %w", v, err)
		}
		cfg.SearchRatePerSec = f
	}
	if v, ok := lookup("SEARCH_BURST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SEARCH_BURST %q: %w", v, err)
		}
		cfg.SearchBurst = n
	}
	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSAllowedOrigins = origins
	}
	return nil
}

// Validate rejects unsupported drivers and unusable settings
func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", c.DBDriver)
	}

	switch c.ReferenceDriver {
	case "sqlite3", "postgres", "mysql":
		if c.ReferenceDSN == "" {
			return errors.New("REFERENCE_DSN is required")
		}
	case "csv":
		if c.ReferenceCSV == "" {
			return errors.New("REFERENCE_CSV is required when REFERENCE_DRIVER=csv")
		}
	default:
		return fmt.Errorf("unsupported REFERENCE_DRIVER %q", c.ReferenceDriver)
	}

	if c.DefaultTimezone != "" {
		if _, err := time.LoadLocation(c.DefaultTimezone); err != nil {
			return fmt.Errorf("invalid DEFAULT_TIMEZONE %q: %w", c.DefaultTimezone, err)
		}
	}
	if c.SearchRatePerSec <= 0 || c.SearchBurst <= 0 {
		return errors.New("SEARCH_RATE_PER_SEC and SEARCH_BURST must be positive")
	}
	return nil
}

// DefaultLocation is the zone for wall-clock times at airports whose own
// zone is unknown
func (c Config) DefaultLocation() *time.Location {
	if c.DefaultTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// UseRedis reports whether the search cache should live in Redis
func (c Config) UseRedis() bool {
	return c.RedisHost != ""
}
