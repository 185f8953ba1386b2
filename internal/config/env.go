package config

import "os"

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) {
	vars := []struct {
		name string
		dst  *string
	}{
		{"TODO_BACKEND", &cfg.Backend},
		{"TODO_DATA", &cfg.DataPath},
		{"TODO_KEY", &cfg.Key},
		{"TODO_STYLE", &cfg.Style},
		{"TODO_THEME", &cfg.Theme},
		{"TODO_LOG_LEVEL", &cfg.LogLevel},
		{"TODO_LOG_FILE", &cfg.LogFile},
	}
	for _, v := range vars {
		if val := os.Getenv(v.name); val != "" {
			*v.dst = val
		}
	}
}
