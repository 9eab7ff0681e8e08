// Package config provides configuration management for the notifctl CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the CLI configuration
type Config struct {
	// CurrentContext is the name of the active context
	CurrentContext string `mapstructure:"current-context"`
	// Contexts holds the available server contexts
	Contexts map[string]*Context `mapstructure:"contexts"`
}

// Context represents a server configuration context
type Context struct {
	// Name is the context identifier
	Name string `mapstructure:"name"`
	// Server is the API server URL
	Server string `mapstructure:"server"`
	// Username is the admin account name
	Username string `mapstructure:"username"`
	// Password is the admin account password
	Password string `mapstructure:"password"`
}

// Path returns the config file location, honoring NOTIFCTL_CONFIG.
func Path() string {
	if p := os.Getenv("NOTIFCTL_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".notifctl/config.yaml"
	}
	return filepath.Join(home, ".notifctl", "config.yaml")
}

// Load reads the configuration from disk. A missing file yields an empty
// config rather than an error so first-run commands work.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(Path())
	v.SetConfigType("yaml")
	v.SetDefault("current-context", "")
	v.SetDefault("contexts", map[string]*Context{})

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if cfg.Contexts == nil {
		cfg.Contexts = map[string]*Context{}
	}
	return &cfg, nil
}

// Save writes the configuration back to disk.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("current-context", cfg.CurrentContext)
	v.Set("contexts", cfg.Contexts)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}

// Current returns the active context, or nil when none is selected.
func (c *Config) Current() *Context {
	if c.CurrentContext == "" {
		return nil
	}
	return c.Contexts[c.CurrentContext]
}

// SetContext stores a context and makes it current.
func (c *Config) SetContext(ctx *Context) {
	if c.Contexts == nil {
		c.Contexts = map[string]*Context{}
	}
	c.Contexts[ctx.Name] = ctx
	c.CurrentContext = ctx.Name
}
