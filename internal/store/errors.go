// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSaltNotFound is returned when no salt has been stored for the
	// requested account.
	ErrSaltNotFound = errors.New("account salt was not found")

	// ErrSaltAlreadyExists is returned when an insert-once salt write loses
	// to an earlier write for the same account. The stored salt is kept.
	ErrSaltAlreadyExists = errors.New("account salt already exists")

	// ErrRecordNotFound is returned when a query or update targets a record
	// (identified by id and owner) that does not exist or was deleted.
	ErrRecordNotFound = errors.New("vault record was not found")

	// ErrRecordAlreadyExists is returned when a record id collides with a
	// stored record.
	ErrRecordAlreadyExists = errors.New("vault record already exists")

	// ErrUnsupportedDSN is returned when a DSN cannot be mapped to a driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
