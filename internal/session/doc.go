// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the single active vault key of one authenticated
// session.
//
// A [Manager] moves through Uninitialized, Deriving, Ready and Destroyed.
// It consumes the user's secret exactly once, resolves the durable account
// salt and publishes the derived key to callers through [Manager.WithKey].
// A key is published only after it opens the password verifier stored with
// the salt, under the KDF parameters and cipher suite the account was
// created with.
// [Manager.Lock] wipes the key and ends the session for good.
package session
