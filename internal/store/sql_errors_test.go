// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: UniqueViolation},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), want: UniqueViolation},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "not null violation", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: UniqueViolation},
		{name: "primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: UniqueViolation},
		{name: "not null", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
