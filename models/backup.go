// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BackupKDF records the key-derivation inputs used for an export so that
// the file can be opened on any device without extra configuration.
type BackupKDF struct {
	Algorithm  string `json:"algorithm"`
	Iterations uint32 `json:"iterations"`
	Memory     uint32 `json:"memory,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
}

// BackupBlob is the portable, self-contained export file. Encrypted and IV
// hold the single envelope that wraps the serialized [BackupPayload]; Salt
// and KDF describe how the export key was derived from the export password.
type BackupBlob struct {
	Version   int       `json:"version"`
	KDF       BackupKDF `json:"kdf"`
	Salt      string    `json:"salt"`
	Encrypted string    `json:"encrypted"`
	IV        string    `json:"iv"`
}

// BackupPayload is the plaintext structure sealed inside a [BackupBlob].
type BackupPayload struct {
	Version  string            `json:"version"`
	Exported time.Time         `json:"exported"`
	Items    []DecryptedRecord `json:"items"`
}
