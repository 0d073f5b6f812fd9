// Package config loads service configuration from YAML, .env files, and
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/deepblocks/auth-service/internal/auth/password"
	"github.com/deepblocks/auth-service/internal/auth/token"
	"github.com/deepblocks/auth-service/internal/logger"
	"github.com/deepblocks/auth-service/internal/mongodb"
	"github.com/deepblocks/auth-service/internal/server"
)

// ServiceName identifies this service in logs and health responses.
const ServiceName = "auth-service"

// Config is the full configuration for the auth service.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging  logger.Config   `yaml:"logging" mapstructure:"logging"`
	Server   server.Config   `yaml:"server" mapstructure:"server"`
	Mongo    mongodb.Config  `yaml:"mongo" mapstructure:"mongo"`
	Auth     token.Config    `yaml:"auth" mapstructure:"auth"`
	Password password.Config `yaml:"password" mapstructure:"password"`
}

// ApplyDefaults fills zero-valued fields across all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = ServiceName
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Mongo.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Password.ApplyDefaults()
}

// Validate checks all sections and returns the first error found.
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("config: environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if err := c.Mongo.Validate(); err != nil {
		return fmt.Errorf("config.mongo: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("config.auth: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("config.password: %w", err)
	}
	return nil
}
