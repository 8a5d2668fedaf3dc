// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import "errors"

var (
	// ErrMalformedBackup is returned when a backup file is structurally
	// invalid: bad JSON, bad base64, wrong lengths, an unknown version or
	// unsupported derivation parameters.
	ErrMalformedBackup = errors.New("malformed backup")

	// ErrImportAuthentication is returned when the backup cannot be opened
	// with the supplied export password, or its ciphertext was altered.
	ErrImportAuthentication = errors.New("backup authentication failed")
)
