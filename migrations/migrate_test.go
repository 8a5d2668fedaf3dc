// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose queries the version table itself; sqlmock has no expectations.
	err = Migrate(db, "sqlite3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "sqlite3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))
	// idempotent
	require.NoError(t, Migrate(db, "sqlite3"))

	for _, table := range []string{"account_salts", "vault_records"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_AccountSaltsColumns(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))

	rows, err := db.Query("SELECT name FROM pragma_table_info('account_salts')")
	require.NoError(t, err)
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		columns = append(columns, name)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{
		"account_id", "salt",
		"kdf_algorithm", "kdf_iterations", "kdf_memory", "kdf_threads",
		"cipher_suite", "verifier_encrypted", "verifier_iv",
		"created_at",
	}, columns)
}
