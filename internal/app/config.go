package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestsPath string `yaml:"manifests_path"`
	ListenPort    int    `yaml:"listen_port"`
	CatalogURL    string `yaml:"catalog_url"`

	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`

	// Dev enables the manifest watcher and the reload websocket.
	Dev bool `yaml:"dev"`
}

// NewConfig validates a configuration and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestsPath == "" {
		return nil, errors.New("ManifestsPath is a required configuration field and cannot be empty")
	}
	if cfg.ListenPort == 0 {
		cfg.ListenPort = 4000
	}
	if cfg.ListenPort < 0 || cfg.ListenPort > 65535 {
		return nil, fmt.Errorf("invalid listen port %d", cfg.ListenPort)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}

// LoadConfigFile reads a YAML configuration file into a Config. Flags parsed
// afterwards override whatever the file sets.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}
