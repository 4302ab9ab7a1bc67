// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// minSessionSignKeyLength is the shortest accepted session signing secret.
const minSessionSignKeyLength = 32

// insecureSignKeys are placeholder secrets that are rejected even when
// they are long enough.
var insecureSignKeys = []string{
	"changeme",
	"secret",
	"insecure",
	"development",
}

// validate checks that the final merged [StructuredConfig] can be used to
// start the server. It fails closed: a missing secret or DSN is an error,
// never silently replaced by a default.
func (cfg *StructuredConfig) validate() error {
	key := cfg.App.SessionSignKey
	if len(key) < minSessionSignKeyLength {
		return fmt.Errorf("%w: session sign key must be at least %d bytes", ErrInvalidAppConfigs, minSessionSignKeyLength)
	}
	lowered := strings.ToLower(key)
	for _, placeholder := range insecureSignKeys {
		if strings.Contains(lowered, placeholder) {
			return fmt.Errorf("%w: session sign key looks like a placeholder", ErrInvalidAppConfigs)
		}
	}
	if cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < 4 || cfg.App.BcryptCost > 31) {
		return fmt.Errorf("%w: bcrypt cost must be between 4 and 31", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.CatalogURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
