// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/lexicon/pkg/db"
	"github.com/dmitrymomot/lexicon/pkg/logger"
	"github.com/dmitrymomot/lexicon/pkg/redis"
	"github.com/dmitrymomot/lexicon/pkg/storage"
)

// Translation source kinds.
const (
	SourceDir      = "dir"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete service configuration.
type Config struct {
	Log     logger.Config
	HTTP    HTTP
	I18n    I18n
	Redis   redis.Config
	DB      db.Config
	Storage storage.Config
}

// HTTP configures the API server.
type HTTP struct {
	Address         string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// I18n selects where translations come from and how they are cached.
type I18n struct {
	Source         string `env:"TRANSLATIONS_SOURCE" envDefault:"dir"`
	Dir            string `env:"TRANSLATIONS_DIR" envDefault:"translations"`
	FallbackLocale string `env:"FALLBACK_LOCALE" envDefault:"en"`

	// Shared cache settings, used when Redis is configured.
	CachePrefix string        `env:"TRANSLATIONS_CACHE_PREFIX" envDefault:"i18n"`
	CacheTTL    time.Duration `env:"TRANSLATIONS_CACHE_TTL" envDefault:"0s"`
}

// Load reads the optional env files (".env" when none are given) and then
// the environment. Variables already set in the environment win over the
// files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected source is configured.
func (c *Config) Validate() error {
	switch c.I18n.Source {
	case SourceDir:
		if c.I18n.Dir == "" {
			return fmt.Errorf("%w: TRANSLATIONS_DIR is empty", ErrInvalidConfig)
		}
	case SourceS3:
		if !c.Storage.Enabled() {
			return fmt.Errorf("%w: STORAGE_BUCKET is required for the s3 source", ErrInvalidConfig)
		}
	case SourcePostgres:
		if !c.DB.Enabled() {
			return fmt.Errorf("%w: DATABASE_CONN_URL is required for the postgres source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown TRANSLATIONS_SOURCE %q", ErrInvalidConfig, c.I18n.Source)
	}
	if c.I18n.FallbackLocale == "" {
		return fmt.Errorf("%w: FALLBACK_LOCALE is empty", ErrInvalidConfig)
	}
	return nil
}
