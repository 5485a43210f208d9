// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CoSplitz

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the CoSplitz
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// API holds the CoSplitz backend endpoint settings used by the HTTP
	// transport layer.
	API API `envPrefix:"API_"`

	// Storage holds the durable session-record store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown in CLI output and sent as part of User-Agent.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// API holds network settings for the outbound transport layer.
type API struct {
	// BaseURL is the CoSplitz backend base URL, scheme included
	// (e.g. "https://api.cosplitz.com"). A bare host:port is accepted and
	// normalised to http://.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session store drivers accepted in [Storage.Driver].
const (
	StorageDriverNone   = ""
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// Storage holds settings for the durable session-record store.
type Storage struct {
	// Driver selects the store backend: "file" for a JSON file, "sqlite"
	// for a local SQLite database, or empty for no durable storage at all
	// (sessions then live only for the process lifetime).
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the file path of the store: the JSON file for the file
	// driver, or the SQLite database file for the sqlite driver. The file
	// driver also accepts ":memory:" for a non-durable in-memory store.
	// Env: STORAGE_PATH
	Path string `env:"PATH"`
}

// defaultRequestTimeout is applied when no source specifies a timeout.
const defaultRequestTimeout = 15 * time.Second

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.API.RequestTimeout <= 0 {
		cfg.API.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Driver == StorageDriverNone && cfg.Storage.Path != "" {
		cfg.Storage.Driver = StorageDriverFile
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.BaseURL == "" {
		return ErrInvalidAPIConfigs
	}

	switch cfg.Storage.Driver {
	case StorageDriverNone:
	case StorageDriverFile, StorageDriverSQLite:
		if cfg.Storage.Path == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	return nil
}
