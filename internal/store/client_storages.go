// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ClientStorages groups the client-side repositories so they can be passed
// to the session and service layers as one value.
type ClientStorages struct {
	// SaltRepository holds the per-account salts. It is SQL-backed unless a
	// salt file is configured.
	SaltRepository SaltRepository

	// RecordRepository holds the sealed vault records.
	RecordRepository RecordRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the database named by cfg.DB.DSN (SQLite file or PostgreSQL URL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the record repository and either the SQL or the JSON-file salt
//     repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	var salts SaltRepository
	if cfg.SaltFilePath != "" {
		salts, err = NewFileSaltStore(cfg.SaltFilePath)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("salt file store: %w", err)
		}
	} else {
		salts = NewSaltRepository(db, logger)
	}

	return &ClientStorages{
		SaltRepository:   salts,
		RecordRepository: NewRecordRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
