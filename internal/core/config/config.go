// Package config handles configuration loading and validation for qrforge.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Encoder EncoderConfig `yaml:"encoder"`
	History HistoryConfig `yaml:"history"`
	DataDir string        `yaml:"-"` // set by caller, not from config file
}

// EncoderConfig holds default encoding parameters. Generation commands can
// override each per invocation.
type EncoderConfig struct {
	// ErrorCorrection is one of L, M, Q, H.
	ErrorCorrection string `yaml:"error_correction"`
	// BoxSize is the rendered size of one module in pixels.
	BoxSize int `yaml:"box_size"`
	// Border is the quiet zone width in modules.
	Border int `yaml:"border"`
}

// HistoryConfig controls generation history retention.
type HistoryConfig struct {
	// MaxEntries caps the history file size; 0 keeps everything.
	MaxEntries int `yaml:"max_entries"`
	// Disabled turns off history recording entirely.
	Disabled bool `yaml:"disabled"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Encoder: EncoderConfig{
			ErrorCorrection: "M",
			BoxSize:         10,
			Border:          4,
		},
		History: HistoryConfig{
			MaxEntries: 0,
		},
	}
}

// Load reads the config file if it exists and validates the result. The
// file is unmarshaled over the defaults, so absent keys keep their default
// values while explicit zeros stick (a `border: 0` quiet zone is valid).
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
