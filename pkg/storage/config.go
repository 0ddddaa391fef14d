package storage

import "strings"

const (
	DefaultRegion        = "us-east-1"
	DefaultMaxObjectSize = 5 << 20
)

// Config holds the bucket location and credentials.
type Config struct {
	Bucket    string `env:"STORAGE_BUCKET"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	Region    string `env:"STORAGE_REGION" envDefault:"us-east-1"`

	// Custom endpoint for MinIO and other S3-compatible services.
	Endpoint string `env:"STORAGE_ENDPOINT"`
	// Path-style addressing, required by MinIO.
	PathStyle bool `env:"STORAGE_PATH_STYLE" envDefault:"false"`

	// Key prefix under which the locale directories live.
	Prefix string `env:"STORAGE_PREFIX"`

	// Objects larger than this are rejected.
	MaxObjectSize int64 `env:"STORAGE_MAX_OBJECT_SIZE" envDefault:"5242880"`
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxObjectSize <= 0 {
		c.MaxObjectSize = DefaultMaxObjectSize
	}
	c.Prefix = strings.Trim(c.Prefix, "/")
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
