// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty account).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates an unusable key-derivation or
	// cipher-suite setting.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker settings
	// (for example, a non-positive decrypt concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
