package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{
		API:     API{BaseURL: "http://localhost:8000"},
		Storage: Storage{Path: "/tmp/session.json"},
	}

	cfg.applyDefaults()

	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		API:     API{BaseURL: "http://localhost:8000", RequestTimeout: time.Minute},
		Storage: Storage{Driver: StorageDriverSQLite, Path: "/tmp/session.db"},
	}

	cfg.applyDefaults()

	assert.Equal(t, time.Minute, cfg.API.RequestTimeout)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid file store",
			cfg: StructuredConfig{
				API:     API{BaseURL: "http://localhost:8000", RequestTimeout: time.Second},
				Storage: Storage{Driver: StorageDriverFile, Path: "/tmp/s.json"},
			},
		},
		{
			name: "valid without durable storage",
			cfg: StructuredConfig{
				API: API{BaseURL: "http://localhost:8000", RequestTimeout: time.Second},
			},
		},
		{
			name:    "missing base url",
			cfg:     StructuredConfig{},
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name: "driver without path",
			cfg: StructuredConfig{
				API:     API{BaseURL: "http://localhost:8000"},
				Storage: Storage{Driver: StorageDriverSQLite},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown driver",
			cfg: StructuredConfig{
				API:     API{BaseURL: "http://localhost:8000"},
				Storage: Storage{Driver: "redis", Path: "whatever"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
