package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the console configuration.
type Config struct {
	// TraceLog is the path of the CBOR build trace file. Empty
	// disables tracing.
	TraceLog string `yaml:"traceLog"`

	// History is the readline history file path. Empty keeps history
	// in memory only.
	History string `yaml:"history"`

	// Prompt is the interactive prompt.
	Prompt string `yaml:"prompt"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prompt: "rdm> ",
	}
}

// ParseConfig parses a console configuration from YAML bytes.
// Missing keys keep their default values.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if config.Prompt == "" {
		config.Prompt = DefaultConfig().Prompt
	}
	return config, nil
}

// LoadConfig loads and parses a console configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseConfig(data)
}
