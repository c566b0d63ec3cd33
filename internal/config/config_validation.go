// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RESTURL != "" && (cfg.Adapter.JWTSecret == "" || cfg.Adapter.Role == "") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RetryMaxInterval > 0 && cfg.Workers.RetryInitialInterval > cfg.Workers.RetryMaxInterval {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ListenChannel == "" {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *DriverConfig) validate() error {
	if cfg.Local.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.DB.DSN != "" && cfg.Workers.ListenChannel == "" {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
