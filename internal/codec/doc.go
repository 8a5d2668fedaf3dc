// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts between raw field envelopes and their text-safe
// transport form, and assembles full encrypted records from plaintext ones.
//
// Every slot of a record (title, username, password, url, notes) is sealed
// independently, so one corrupted slot never hides the others' errors and
// every slot is well-formed on its own.
package codec
