// Package config loads the foreman configuration file (YAML or JSON).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Config is the full foreman configuration.
type Config struct {
	Assistant AssistantConfig `yaml:"assistant" json:"assistant"`
	Log       LogConfig       `yaml:"log" json:"log"`
	Export    ExportConfig    `yaml:"export" json:"export"`
	History   HistoryConfig   `yaml:"history" json:"history"`
}

// AssistantConfig configures the upstream assistant connection.
type AssistantConfig struct {
	BaseURL    string        `yaml:"base_url" json:"base_url"`
	APIKeyPath string        `yaml:"api_key_path" json:"api_key_path"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	// Sessions enables the session-based request path. When a session
	// request fails the client falls back to stateless requests for the
	// rest of the process, regardless of this setting.
	Sessions bool `yaml:"sessions" json:"sessions"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // text or json
}

// ExportConfig configures artifact rendering.
type ExportConfig struct {
	Mode string `yaml:"mode" json:"mode"` // ascii or markdown
}

// HistoryConfig configures the local artifact history database.
type HistoryConfig struct {
	Path string `yaml:"path" json:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Assistant: AssistantConfig{
			Timeout:  120 * time.Second,
			Sessions: true,
		},
		Log:     LogConfig{Level: "info", Format: "text"},
		Export:  ExportConfig{Mode: "ascii"},
		History: HistoryConfig{Path: ".foreman/history.db"},
	}
}

// LoadFromPath reads a config file (YAML or JSON). Format is detected by
// extension (.yaml/.yml/.json) or, failing that, by content.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config from bytes. ext is the file extension for a format
// hint; empty means detect from content.
func Load(data []byte, ext string) (*Config, error) {
	cfg := Default()

	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}

	switch ext {
	case ".yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	default:
		// Detect: JSON objects start with '{', everything else is YAML.
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config json: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	return cfg, nil
}
