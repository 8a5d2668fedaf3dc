// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	saltsTable   = "account_salts"
	recordsTable = "vault_records"
)

// saltColumns is the column order of account_salts reads and writes.
// scanAccountSalt depends on it.
var saltColumns = []string{
	"account_id",
	"salt",
	"kdf_algorithm",
	"kdf_iterations",
	"kdf_memory",
	"kdf_threads",
	"cipher_suite",
	"verifier_encrypted",
	"verifier_iv",
	"created_at",
}

// recordColumns is the column order shared by every SELECT and INSERT on
// vault_records. scanRecord depends on it.
var recordColumns = []string{
	"id",
	"owner_id",
	"encrypted_title",
	"iv_title",
	"encrypted_username",
	"iv_username",
	"encrypted_password",
	"iv_password",
	"encrypted_url",
	"iv_url",
	"encrypted_notes",
	"iv_notes",
	"created_at",
	"updated_at",
}

func buildGetSaltQuery(b sq.StatementBuilderType, accountID string) (string, []any, error) {
	return b.Select(saltColumns...).
		From(saltsTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func buildInsertSaltQuery(b sq.StatementBuilderType, salt models.AccountSalt) (string, []any, error) {
	return b.Insert(saltsTable).
		Columns(saltColumns...).
		Values(
			salt.AccountID,
			base64.StdEncoding.EncodeToString(salt.Salt),
			salt.KDFAlgorithm,
			int64(salt.KDFIterations),
			int64(salt.KDFMemory),
			int64(salt.KDFThreads),
			salt.CipherSuite,
			salt.Verifier.Encrypted,
			salt.Verifier.IV,
			salt.CreatedAt,
		).
		ToSql()
}

func buildInsertRecordQuery(b sq.StatementBuilderType, rec models.EncryptedRecord) (string, []any, error) {
	return b.Insert(recordsTable).
		Columns(recordColumns...).
		Values(
			rec.ID,
			rec.OwnerID,
			rec.EncryptedTitle, rec.IVTitle,
			rec.EncryptedUsername, rec.IVUsername,
			rec.EncryptedPassword, rec.IVPassword,
			rec.EncryptedURL, rec.IVURL,
			rec.EncryptedNotes, rec.IVNotes,
			rec.CreatedAt,
			rec.UpdatedAt,
		).
		ToSql()
}

func buildGetRecordQuery(b sq.StatementBuilderType, ownerID, id string) (string, []any, error) {
	return b.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted": false}).
		ToSql()
}

func buildGetAllRecordsQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"deleted": false}).
		OrderBy("created_at DESC", "id").
		ToSql()
}

// buildUpdateRecordQuery rewrites every sealed slot. A record is always
// resealed as a whole, so partial updates are not supported.
func buildUpdateRecordQuery(b sq.StatementBuilderType, rec models.EncryptedRecord) (string, []any, error) {
	return b.Update(recordsTable).
		Set("encrypted_title", rec.EncryptedTitle).
		Set("iv_title", rec.IVTitle).
		Set("encrypted_username", rec.EncryptedUsername).
		Set("iv_username", rec.IVUsername).
		Set("encrypted_password", rec.EncryptedPassword).
		Set("iv_password", rec.IVPassword).
		Set("encrypted_url", rec.EncryptedURL).
		Set("iv_url", rec.IVURL).
		Set("encrypted_notes", rec.EncryptedNotes).
		Set("iv_notes", rec.IVNotes).
		Set("updated_at", rec.UpdatedAt).
		Where(sq.Eq{"owner_id": rec.OwnerID}).
		Where(sq.Eq{"id": rec.ID}).
		Where(sq.Eq{"deleted": false}).
		ToSql()
}

// buildDeleteRecordQuery marks a record deleted instead of removing the row.
func buildDeleteRecordQuery(b sq.StatementBuilderType, ownerID, id string, at time.Time) (string, []any, error) {
	return b.Update(recordsTable).
		Set("deleted", true).
		Set("updated_at", at).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted": false}).
		ToSql()
}

func buildCountRecordsQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(recordsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"deleted": false}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.EncryptedRecord, error) {
	var rec models.EncryptedRecord
	err := row.Scan(
		&rec.ID,
		&rec.OwnerID,
		&rec.EncryptedTitle, &rec.IVTitle,
		&rec.EncryptedUsername, &rec.IVUsername,
		&rec.EncryptedPassword, &rec.IVPassword,
		&rec.EncryptedURL, &rec.IVURL,
		&rec.EncryptedNotes, &rec.IVNotes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

var errCorruptSalt = errors.New("stored salt is not valid base64")

// scanAccountSalt reads one row in saltColumns order.
func scanAccountSalt(row rowScanner) (models.AccountSalt, error) {
	var (
		salt               models.AccountSalt
		encoded            string
		iterations, memory int64
		threads            int64
	)
	err := row.Scan(
		&salt.AccountID,
		&encoded,
		&salt.KDFAlgorithm,
		&iterations,
		&memory,
		&threads,
		&salt.CipherSuite,
		&salt.Verifier.Encrypted,
		&salt.Verifier.IV,
		&salt.CreatedAt,
	)
	if err != nil {
		return models.AccountSalt{}, err
	}

	salt.Salt, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return models.AccountSalt{}, fmt.Errorf("%w: %w", errCorruptSalt, err)
	}
	salt.KDFIterations = uint32(iterations)
	salt.KDFMemory = uint32(memory)
	salt.KDFThreads = uint8(threads)
	return salt, nil
}
