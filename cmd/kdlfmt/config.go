package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is kdlfmt's optional project-wide configuration file, a small
// YAML document with settings relevant to formatting.
type Config struct {
	// MaxDiagnostics caps how many diagnostics are printed per file; 0
	// (the default) means unlimited.
	MaxDiagnostics int `yaml:"max_diagnostics"`
	// Compact makes "format" default to the single-line compact form.
	Compact bool `yaml:"compact"`
}

// loadConfig reads Config from configPath, returning the zero Config
// (all defaults) if the file does not exist.
func loadConfig() (Config, error) {
	var cfg Config
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
