// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// applyDefaults fills token lifetimes and the issuer with package defaults
// when no source supplied them. Signing secrets have no defaults: they are
// required and checked by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.AccessTokenDuration == 0 {
		cfg.App.AccessTokenDuration = DefaultAccessTokenDuration
	}
	if cfg.App.RefreshTokenDuration == 0 {
		cfg.App.RefreshTokenDuration = DefaultRefreshTokenDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Absence of either signing secret is startup-fatal: every outstanding
// token of that kind would be unverifiable.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AccessTokenSignKey == "" {
		return ErrMissingAccessTokenSignKey
	}

	if cfg.App.RefreshTokenSignKey == "" {
		return ErrMissingRefreshTokenSignKey
	}

	if cfg.App.AccessTokenSignKey == cfg.App.RefreshTokenSignKey {
		return ErrIdenticalTokenSignKeys
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
