// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// KeyHolder gives scoped access to the active session key.
// *session.Manager satisfies it.
type KeyHolder interface {
	AccountID() string
	WithKey(fn func(key *crypto.Key) error) error
}

// IDGenerator issues record identifiers.
type IDGenerator interface {
	Generate() string
}

// VaultService defines the operations on the records of one unlocked account.
// Every method fails with session.ErrVaultLocked until the session is unlocked.
type VaultService interface {
	// Create seals rec under the session key, assigns a new id and timestamps
	// and stores it. The stored record is returned without plaintext.
	Create(ctx context.Context, rec models.DecryptedRecord) (models.EncryptedRecord, error)

	// Get loads and opens a single record.
	// Returns ErrUndecryptableRecord if any field fails to open.
	Get(ctx context.Context, id string) (models.DecryptedRecord, error)

	// List loads every record of the account and opens them concurrently.
	// A record that fails to open is reported in the result's Failed list.
	List(ctx context.Context) (models.RecordList, error)

	// Update reseals rec over the stored record with the same id and
	// refreshes its UpdatedAt.
	Update(ctx context.Context, rec models.DecryptedRecord) (models.EncryptedRecord, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error

	// Export seals every readable record into a portable blob under a key
	// derived from exportSecret. exportSecret is wiped before returning.
	Export(ctx context.Context, exportSecret []byte) (models.BackupBlob, error)

	// Import opens blob with exportSecret and stores its items as new
	// records. Either every item is stored or none is. exportSecret is wiped
	// before returning.
	Import(ctx context.Context, blob models.BackupBlob, exportSecret []byte) (int, error)
}
