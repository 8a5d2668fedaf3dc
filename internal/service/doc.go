// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service ties the session key, the record codec and the record
// repository together. Plaintext records enter and leave here; only sealed
// records are handed to storage.
package service
