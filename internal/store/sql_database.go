// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// Supported SQL dialects. The values double as goose dialect names.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB together with its dialect and error classifier.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database for dsn. DSNs starting with postgres:// or
// postgresql:// use pgx; everything else is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// inTx runs fn inside a transaction and commits when fn succeeds.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
