package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with yaml tags for persistence.
type fileConfig struct {
	Coding struct {
		Symbols    int `yaml:"symbols"`
		SymbolSize int `yaml:"symbol_size"`
	} `yaml:"coding"`
	Tracing struct {
		Enabled      bool    `yaml:"enabled"`
		Exporter     string  `yaml:"exporter"`
		FilePath     string  `yaml:"file_path,omitempty"`
		OTLPEndpoint string  `yaml:"otlp_endpoint"`
		SampleRate   float64 `yaml:"sample_rate"`
		ServiceName  string  `yaml:"service_name"`
	} `yaml:"tracing"`
}

// WriteDefaultConfig writes the default configuration to path, creating
// parent directories as needed. Fails if the file already exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	defaults := Defaults()
	var fc fileConfig
	fc.Coding.Symbols = defaults.Coding.Symbols
	fc.Coding.SymbolSize = defaults.Coding.SymbolSize
	fc.Tracing.Enabled = defaults.Tracing.Enabled
	fc.Tracing.Exporter = defaults.Tracing.Exporter
	fc.Tracing.FilePath = defaults.Tracing.FilePath
	fc.Tracing.OTLPEndpoint = defaults.Tracing.OTLPEndpoint
	fc.Tracing.SampleRate = defaults.Tracing.SampleRate
	fc.Tracing.ServiceName = defaults.Tracing.ServiceName

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
