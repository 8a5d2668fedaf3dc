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

// saltWriteAttempts bounds retries of a salt insert that failed with a
// transient (busy, locked, serialization) error.
const saltWriteAttempts = 3

// saltRepository is the SQL-backed implementation of [SaltRepository].
type saltRepository struct {
	db      *DB
	logger  *logger.Logger
	now     func() time.Time
	backoff time.Duration
}

// NewSaltRepository constructs a [SaltRepository] on db.
func NewSaltRepository(db *DB, logger *logger.Logger) SaltRepository {
	logger.Debug().Msg("creating salt repository")
	return &saltRepository{
		db:      db,
		logger:  logger,
		now:     time.Now,
		backoff: 50 * time.Millisecond,
	}
}

// GetSalt returns the stored salt row of accountID or [ErrSaltNotFound].
func (r *saltRepository) GetSalt(ctx context.Context, accountID string) (models.AccountSalt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSaltQuery(r.db.builder(), accountID)
	if err != nil {
		return models.AccountSalt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	salt, err := scanAccountSalt(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.AccountSalt{}, ErrSaltNotFound
	case errors.Is(err, errCorruptSalt):
		log.Err(err).Str("func", "*saltRepository.GetSalt").Str("account_id", accountID).Msg("stored salt is not valid base64")
		return models.AccountSalt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	case err != nil:
		log.Err(err).Str("func", "*saltRepository.GetSalt").Str("account_id", accountID).Msg("failed to query account salt")
		return models.AccountSalt{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return salt, nil
}

// CreateSalt inserts salt unless a row already exists for its account.
func (r *saltRepository) CreateSalt(ctx context.Context, salt models.AccountSalt) error {
	log := logger.FromContext(ctx)

	salt.CreatedAt = r.now().UTC()
	query, args, err := buildInsertSaltQuery(r.db.builder(), salt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			log.Debug().Str("func", "*saltRepository.CreateSalt").Str("account_id", salt.AccountID).Msg("account salt created")
			return nil
		}

		switch r.db.classify(err) {
		case UniqueViolation:
			return ErrSaltAlreadyExists
		case Retryable:
			if attempt < saltWriteAttempts {
				log.Warn().Err(err).Str("func", "*saltRepository.CreateSalt").Int("attempt", attempt).Msg("retrying salt insert")
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(r.backoff * time.Duration(attempt)):
				}
				continue
			}
		}

		log.Err(err).Str("func", "*saltRepository.CreateSalt").Str("account_id", salt.AccountID).Msg("failed to insert account salt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
