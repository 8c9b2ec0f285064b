// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the built-in fallback values merged in as the
// lowest-priority configuration source. The token sign key deliberately has
// no default; it must come from the environment, a flag, or the JSON file.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "memory-calendar",
			TokenDuration: 7 * 24 * time.Hour,
		},
		Storage: Storage{
			DataDir:   "accounts",
			BackupDir: "backups",
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DataDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SnapshotInterval > 0 && cfg.Storage.BackupDir == "" {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
