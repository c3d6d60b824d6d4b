// Package config provides configuration types, defaults, and persistence
// for codabind.
package config

import (
	"github.com/rmarchant/codabind/internal/tracing"
)

// CodingConfig holds the default generation geometry used when a factory is
// constructed from the command line without explicit flags.
type CodingConfig struct {
	Symbols    int `mapstructure:"symbols"`
	SymbolSize int `mapstructure:"symbol_size"`
}

// Config holds all configuration options for codabind.
type Config struct {
	Coding  CodingConfig   `mapstructure:"coding"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Coding: CodingConfig{
			Symbols:    16,
			SymbolSize: 1400,
		},
		Tracing: tracing.DefaultConfig(),
	}
}
