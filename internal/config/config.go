// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// StructuredConfig is the top-level configuration container for the bridge.
// It is populated by merging values from environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Bridge holds payload formats, I/O locations and marshalling options.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Bridge configures a single conversion run.
type Bridge struct {
	// InputFormat is the payload format read from the input
	// ("json", "yaml" or "cbor").
	// Env: BRIDGE_INPUT_FORMAT
	InputFormat string `env:"INPUT_FORMAT"`

	// OutputFormat is the payload format written to the output.
	// Env: BRIDGE_OUTPUT_FORMAT
	OutputFormat string `env:"OUTPUT_FORMAT"`

	// InputPath is the file to read. Empty or "-" means stdin.
	// Env: BRIDGE_INPUT_PATH
	InputPath string `env:"INPUT_PATH"`

	// OutputPath is the file to write. Empty or "-" means stdout.
	// Env: BRIDGE_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH"`

	// LegacyWidthKey writes and reads the remote video width under "port".
	// Env: BRIDGE_LEGACY_WIDTH_KEY
	LegacyWidthKey bool `env:"LEGACY_WIDTH_KEY"`

	// Strict rejects decoded configuration that fails host-side validation.
	// Env: BRIDGE_STRICT
	Strict bool `env:"STRICT"`
}

// Log configures the logger.
type Log struct {
	// Level is the minimum level emitted ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default values applied to fields no source has set.
const (
	DefaultFormat   = "json"
	DefaultLogLevel = "info"
)

// GetStructuredConfig loads, merges, and validates the bridge configuration.
//
// Sources are merged with mergo, which only fills fields that are still
// zero, so earlier sources take precedence:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Bridge: Bridge{
			InputFormat:  DefaultFormat,
			OutputFormat: DefaultFormat,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
