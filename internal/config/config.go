// Package config provides YAML-based configuration loading for Trestle.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level Trestle configuration, loaded from config.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Admin    *AdminConfig   `yaml:"admin"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig selects and configures the backing store.
// Driver is "sqlite" (file path) or "mysql" (host/port/name).
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// AuthConfig holds token-signing settings.
type AuthConfig struct {
	Secret          string `yaml:"secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
}

// AdminConfig optionally seeds an initial admin account at `trestle db init`.
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "trestle.db"
	}
	if c.Database.Driver == "mysql" {
		if c.Database.Host == "" {
			c.Database.Host = "127.0.0.1"
		}
		if c.Database.Port == 0 {
			c.Database.Port = 3306
		}
		if c.Database.User == "" {
			c.Database.User = "root"
		}
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 30
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Sprintf("database.driver %q is not one of sqlite, mysql", c.Database.Driver))
	}
	if c.Database.Driver == "mysql" && c.Database.Name == "" {
		errs = append(errs, "database.name is required for mysql")
	}
	if c.Auth.Secret == "" {
		errs = append(errs, "auth.secret is required")
	}
	if c.Admin != nil {
		if c.Admin.Email == "" {
			errs = append(errs, "admin.email is required when admin is set")
		}
		if c.Admin.Password == "" {
			errs = append(errs, "admin.password is required when admin is set")
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
