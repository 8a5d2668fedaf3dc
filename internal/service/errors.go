// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUndecryptableRecord is returned when a stored record exists but one
	// of its fields does not open under the session key.
	ErrUndecryptableRecord = errors.New("entry could not be decrypted")
)

// ReasonUndecryptable is reported in [models.FailedRecord.Reason].
const ReasonUndecryptable = "entry could not be decrypted"
