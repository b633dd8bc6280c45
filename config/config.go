// Package config resolves where property lists come from and how a store
// loads them. Values come from an optional YAML file, then environment
// variables, then command line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/tileprops/content"
)

const (
	DefaultFile        = "tileprops.yaml"
	DefaultContentDir  = "lists"
	DefaultLoadTimeout = 10 * time.Second
)

type Config struct {
	ContentDir  string        `yaml:"content_dir" env:"TILEPROPS_CONTENT_DIR"`
	Tag         string        `yaml:"tag" env:"TILEPROPS_TAG"`
	SQLitePath  string        `yaml:"sqlite_path" env:"TILEPROPS_SQLITE_PATH"`
	PostgresDSN string        `yaml:"postgres_dsn" env:"TILEPROPS_POSTGRES_DSN"`
	Strict      bool          `yaml:"strict" env:"TILEPROPS_STRICT"`
	LoadTimeout time.Duration `yaml:"load_timeout" env:"TILEPROPS_LOAD_TIMEOUT"`
}

// Load reads path when it exists, applies environment overrides and fills in
// defaults. A missing file is not an error unless required is set.
func Load(path string, required bool) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("loading config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.ContentDir) == "" {
		c.ContentDir = DefaultContentDir
	}
	if strings.TrimSpace(c.Tag) == "" {
		c.Tag = content.DefaultTag
	}
	if c.LoadTimeout == 0 {
		c.LoadTimeout = DefaultLoadTimeout
	}
}

func (c *Config) Validate() error {
	if c.LoadTimeout < 0 {
		return fmt.Errorf("load timeout must not be negative")
	}
	if strings.TrimSpace(c.SQLitePath) != "" && strings.TrimSpace(c.PostgresDSN) != "" {
		return fmt.Errorf("sqlite path and postgres dsn are mutually exclusive")
	}
	return nil
}

// Backend names the content source the config selects.
func (c *Config) Backend() string {
	switch {
	case strings.TrimSpace(c.PostgresDSN) != "":
		return "postgres"
	case strings.TrimSpace(c.SQLitePath) != "":
		return "sqlite"
	default:
		return "fs"
	}
}
