// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup seals a list of decrypted records into one portable blob
// and opens it again.
//
// The export key is derived from a separate export password and a fresh
// salt that travels inside the blob. It never reuses the account salt or the
// session key, so a leaked backup file says nothing about the account.
package backup
