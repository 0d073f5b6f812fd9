package mongodb

import (
	"fmt"
	"time"
)

// Config holds MongoDB connection configuration.
type Config struct {
	// URI is the MongoDB connection string.
	URI string `yaml:"uri" mapstructure:"uri"`

	// Database is the target database name.
	Database string `yaml:"database" mapstructure:"database"`

	// ServerSelectionTimeout bounds how long operations wait for a usable
	// server before failing fast (e.g. "3s").
	ServerSelectionTimeout string `yaml:"server_selection_timeout" mapstructure:"server_selection_timeout"`

	// ConnectTimeout bounds the initial connection handshake (e.g. "10s").
	ConnectTimeout string `yaml:"connect_timeout" mapstructure:"connect_timeout"`

	// MaxPoolSize caps concurrent connections in the driver pool.
	MaxPoolSize uint64 `yaml:"max_pool_size" mapstructure:"max_pool_size"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.ServerSelectionTimeout == "" {
		c.ServerSelectionTimeout = "3s"
	}
	if c.ConnectTimeout == "" {
		c.ConnectTimeout = "10s"
	}
	if c.MaxPoolSize == 0 {
		c.MaxPoolSize = 20
	}
}

// Validate checks that required fields are present and parseable.
func (c *Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if c.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if _, err := time.ParseDuration(c.ServerSelectionTimeout); err != nil {
		return fmt.Errorf("invalid mongo.server_selection_timeout %q: %w", c.ServerSelectionTimeout, err)
	}
	if _, err := time.ParseDuration(c.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid mongo.connect_timeout %q: %w", c.ConnectTimeout, err)
	}
	return nil
}

// serverSelectionTimeout returns the parsed timeout. Call Validate first.
func (c *Config) serverSelectionTimeout() time.Duration {
	d, _ := time.ParseDuration(c.ServerSelectionTimeout)
	return d
}

// connectTimeout returns the parsed timeout. Call Validate first.
func (c *Config) connectTimeout() time.Duration {
	d, _ := time.ParseDuration(c.ConnectTimeout)
	return d
}
