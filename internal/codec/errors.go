// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEnvelope is returned when an encoded envelope is not valid
	// base64 or one of its halves is missing.
	ErrMalformedEnvelope = errors.New("malformed field envelope")

	// ErrMissingTitle is returned when a record has no title. Title is the
	// only mandatory field of a record.
	ErrMissingTitle = errors.New("record title is required")

	// ErrMissingOwner is returned when an encrypted record has no owner
	// reference and therefore cannot be stored.
	ErrMissingOwner = errors.New("record owner is required")
)

// FieldError reports which slot of a record could not be sealed, opened or
// decoded. Err wraps the underlying cause (for example
// [crypto.ErrAuthentication] or [ErrMalformedEnvelope]).
type FieldError struct {
	Field string
	Err   error
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error {
	return e.Err
}
