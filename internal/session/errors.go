// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrVaultLocked is returned by WithKey when no key is active.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrSessionDestroyed is returned once the session has been locked. A
	// new Manager is required to unlock again.
	ErrSessionDestroyed = errors.New("session destroyed")

	// ErrSaltMissing is returned when records exist for an account whose
	// salt cannot be found. A fresh salt would make every record unreadable.
	ErrSaltMissing = errors.New("account salt missing while records exist")

	// ErrWrongSecret is returned when the secret does not open the account's
	// password verifier. No key is published.
	ErrWrongSecret = errors.New("secret does not match the account")

	// ErrSettingsMismatch is returned when the configured KDF parameters or
	// cipher suite differ from the ones stored with the account salt.
	ErrSettingsMismatch = errors.New("crypto settings differ from the account's stored settings")
)
