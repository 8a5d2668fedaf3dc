// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestDB(t *testing.T, dialect string, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}, mock
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func sampleRecord(id string) models.EncryptedRecord {
	return models.EncryptedRecord{
		ID:                id,
		OwnerID:           "alice",
		EncryptedTitle:    "dGl0bGU=",
		IVTitle:           "aXYtdGl0bGUtMTI=",
		EncryptedUsername: "dXNlcg==",
		IVUsername:        "aXYtdXNlci0xMjM=",
		EncryptedPassword: "cGFzcw==",
		IVPassword:        "aXYtcGFzcy0xMjM=",
		EncryptedURL:      "dXJs",
		IVURL:             "aXYtdXJsLTEyMzQ=",
		EncryptedNotes:    "bm90ZXM=",
		IVNotes:           "aXYtbm90ZXMtMTI=",
		CreatedAt:         fixedNow,
		UpdatedAt:         fixedNow,
	}
}

func recordRow(rec models.EncryptedRecord) []driver.Value {
	return []driver.Value{
		rec.ID, rec.OwnerID,
		rec.EncryptedTitle, rec.IVTitle,
		rec.EncryptedUsername, rec.IVUsername,
		rec.EncryptedPassword, rec.IVPassword,
		rec.EncryptedURL, rec.IVURL,
		rec.EncryptedNotes, rec.IVNotes,
		rec.CreatedAt, rec.UpdatedAt,
	}
}

func recordRows(recs ...models.EncryptedRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows(recordColumns)
	for _, rec := range recs {
		rows.AddRow(recordRow(rec)...)
	}
	return rows
}

func recordRowArgs(rec models.EncryptedRecord) []driver.Value {
	return recordRow(rec)
}

func sampleSalt(accountID string, salt []byte) models.AccountSalt {
	return models.AccountSalt{
		AccountID:     accountID,
		Salt:          salt,
		KDFAlgorithm:  "pbkdf2-sha256",
		KDFIterations: 100000,
		CipherSuite:   "aes-256-gcm",
		Verifier: models.EncodedEnvelope{
			Encrypted: "dmVyaWZpZXI=",
			IV:        "aXYtdmVyaWZpZXI=",
		},
	}
}

func saltRows(salt models.AccountSalt, encodedSalt string) *sqlmock.Rows {
	return sqlmock.NewRows(saltColumns).AddRow(
		salt.AccountID, encodedSalt,
		salt.KDFAlgorithm, int64(salt.KDFIterations), int64(salt.KDFMemory), int64(salt.KDFThreads),
		salt.CipherSuite,
		salt.Verifier.Encrypted, salt.Verifier.IV,
		fixedNow,
	)
}
