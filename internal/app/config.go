package app

import "errors"

// Config holds the process-level settings for an App.
type Config struct {
	ConfigPath string // YAML run config

	LogFormat string
	LogLevel  string
	Watch     bool
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
