// Package config loads settings from defaults, a TOML file, the
// environment and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todolist/internal/model"
)

const (
	DefaultBackend  = "json"
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"

	// ProjectFileName is looked up in the working directory first.
	ProjectFileName = "todo.toml"
)

// Config is the full set of settings.
type Config struct {
	Backend  string `toml:"backend"`
	DataPath string `toml:"data"`
	Key      string `toml:"key"`
	Style    string `toml:"style"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// Source is the config file that was read, if any.
	Source string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Backend = DefaultBackend
	cfg.Style = string(model.Mutable)
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
}

// Load reads path, or the first config file found when path is empty,
// then applies TODO_* environment overrides. Call Finalize afterwards.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				path = ""
			} else {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		}
		cfg.Source = path
	}

	loadFromEnv(cfg)
	return cfg, nil
}

// Finalize validates values and fills in derived defaults.
func (c *Config) Finalize() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case "":
		c.Backend = DefaultBackend
	case "json", "sqlite", "memory":
	default:
		return fmt.Errorf("backend %q: want json|sqlite|memory", c.Backend)
	}

	style, err := model.ParseStyle(c.Style)
	if err != nil {
		return err
	}
	c.Style = string(style)

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "":
		c.Theme = DefaultTheme
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme %q: want classic|neon|mono", c.Theme)
	}

	if c.Key == "" {
		c.Key = "todo-list-" + c.Style
	}
	if c.DataPath == "" {
		switch c.Backend {
		case "json":
			c.DataPath = "todos.json"
		case "sqlite":
			c.DataPath = "todos.db"
		}
	}
	c.DataPath = expandPath(c.DataPath)
	c.LogFile = expandPath(c.LogFile)
	return nil
}

// ListStyle is Style as a model.Style. Valid after Finalize.
func (c *Config) ListStyle() model.Style { return model.Style(c.Style) }

func findConfigFile() string {
	if _, err := os.Stat(ProjectFileName); err == nil {
		return ProjectFileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "todo", ProjectFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
