// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CoSplitz

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"API_BASE_URL":        "https://api.cosplitz.example",
		"API_REQUEST_TIMEOUT": "30s",

		"STORAGE_DRIVER": "file",
		"STORAGE_PATH":   "/var/lib/cosplitz/session.json",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://api.cosplitz.example", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/cosplitz/session.json", cfg.Storage.Path)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8000")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Empty(t, cfg.Storage.Driver)
	assert.Empty(t, cfg.Storage.Path)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("API_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
