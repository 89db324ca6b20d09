package main

import (
	"fmt"
	"os"

	"github.com/rowhit/remacs/internal/config"
	"gopkg.in/yaml.v3"
)

// Config is the optional remacs.yaml startup configuration.
type Config struct {
	// MessageLogSize bounds the in-memory message log. Zero means the
	// built-in default.
	MessageLogSize int `yaml:"message_log_size,omitempty"`

	// LoadFiles are evaluated in order before -load/-eval arguments.
	LoadFiles []string `yaml:"load_files,omitempty"`

	// Prompt overrides the interactive prompt.
	Prompt string `yaml:"prompt,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		MessageLogSize: config.DefaultMessageLogSize,
		Prompt:         "elisp> ",
	}
}

// LoadConfig reads path when it exists, filling in defaults for
// omitted fields. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.MessageLogSize <= 0 {
		cfg.MessageLogSize = config.DefaultMessageLogSize
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "elisp> "
	}
	return cfg, nil
}
