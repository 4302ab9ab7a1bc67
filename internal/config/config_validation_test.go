package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "short sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSignKey = "TESTINGGG" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "placeholder sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSignKey = strings.Repeat("changeme", 4) },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BcryptCost = 2 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing catalog url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.CatalogURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
