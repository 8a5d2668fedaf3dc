// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SaltRepository persists one durable salt row per account: the salt, the
// KDF parameters and cipher suite it is used with, and the password verifier.
//
// CreateSalt has insert-once semantics: when a row already exists for the
// account it returns [ErrSaltAlreadyExists] and leaves the stored row
// untouched. CreatedAt is set by the repository. GetSalt returns
// [ErrSaltNotFound] for an unknown account.
type SaltRepository interface {
	GetSalt(ctx context.Context, accountID string) (models.AccountSalt, error)
	CreateSalt(ctx context.Context, salt models.AccountSalt) error
}

// RecordRepository is the storage collaborator for sealed vault records. It
// only ever sees [models.EncryptedRecord] values.
type RecordRepository interface {
	// SaveRecords stores every record or none of them.
	SaveRecords(ctx context.Context, records ...models.EncryptedRecord) error
	GetRecord(ctx context.Context, ownerID, id string) (models.EncryptedRecord, error)
	GetAllRecords(ctx context.Context, ownerID string) ([]models.EncryptedRecord, error)
	UpdateRecord(ctx context.Context, record models.EncryptedRecord) error
	DeleteRecord(ctx context.Context, ownerID, id string) error
	CountRecords(ctx context.Context, ownerID string) (int, error)
}
