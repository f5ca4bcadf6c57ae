// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	objects := cfg.Storage.Objects
	if objects.Enabled() && (objects.Region == "" || objects.PublicURL == "") {
		return fmt.Errorf("%w: object storage needs region and public url", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Server.SignInRate <= 0 || cfg.Server.SignInBurst <= 0 {
		return fmt.Errorf("%w: sign-in rate and burst must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
