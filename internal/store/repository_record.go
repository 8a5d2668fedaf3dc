// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository].
// All methods obtain a context-scoped logger via [logger.FromContext].
type recordRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewRecordRepository constructs a [RecordRepository] on db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// SaveRecords inserts records in one transaction. A colliding id aborts the
// whole batch with [ErrRecordAlreadyExists].
func (r *recordRepository) SaveRecords(ctx context.Context, records ...models.EncryptedRecord) error {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, rec := range records {
			query, args, err := buildInsertRecordQuery(r.db.builder(), rec)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "*recordRepository.SaveRecords").
					Str("owner_id", rec.OwnerID).
					Str("id", rec.ID).
					Msg("failed to insert vault record")

				if r.db.classify(err) == UniqueViolation {
					return fmt.Errorf("%w (id=%s)", ErrRecordAlreadyExists, rec.ID)
				}
				return fmt.Errorf("%w: save record (id=%s): %w", ErrExecutingStatement, rec.ID, err)
			}
		}
		return nil
	})
}

// GetRecord returns the live record id of ownerID or [ErrRecordNotFound].
func (r *recordRepository) GetRecord(ctx context.Context, ownerID, id string) (models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(r.db.builder(), ownerID, id)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.EncryptedRecord{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*recordRepository.GetRecord").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to query vault record")
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

// GetAllRecords returns every live record of ownerID, newest first.
func (r *recordRepository) GetAllRecords(ctx context.Context, ownerID string) ([]models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllRecordsQuery(r.db.builder(), ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.GetAllRecords").
			Str("owner_id", ownerID).
			Msg("failed to execute query for getting all records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.EncryptedRecord
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*recordRepository.GetAllRecords").
				Str("owner_id", ownerID).
				Msg("failed to scan vault record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*recordRepository.GetAllRecords").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, rowsErr)
	}

	return records, nil
}

// UpdateRecord replaces the sealed slots of an existing live record.
func (r *recordRepository) UpdateRecord(ctx context.Context, record models.EncryptedRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecordQuery(r.db.builder(), record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.UpdateRecord").
			Str("owner_id", record.OwnerID).
			Str("id", record.ID).
			Msg("failed to update vault record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, record.ID)
}

// DeleteRecord soft-deletes the record id of ownerID.
func (r *recordRepository) DeleteRecord(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(r.db.builder(), ownerID, id, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.DeleteRecord").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to delete vault record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, id)
}

// CountRecords returns the number of live records of ownerID.
func (r *recordRepository) CountRecords(ctx context.Context, ownerID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountRecordsQuery(r.db.builder(), ownerID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*recordRepository.CountRecords").
			Str("owner_id", ownerID).
			Msg("failed to count vault records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func requireAffected(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w (id=%s)", ErrRecordNotFound, id)
	}
	return nil
}
