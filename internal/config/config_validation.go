// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the final merged [StructuredConfig] can be used to
// start the server. Each group reports its own sentinel so the caller can
// tell which part of the environment is incomplete.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Photos.Backend {
	case PhotoBackendS3:
		if cfg.Storage.Photos.S3.Bucket == "" {
			return ErrInvalidPhotoConfigs
		}
	case PhotoBackendCloudinary:
		c := cfg.Storage.Photos.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
			return ErrInvalidPhotoConfigs
		}
	default:
		return ErrInvalidPhotoConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.ResetTokenKey == "" || cfg.App.ResetTokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ResetSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
