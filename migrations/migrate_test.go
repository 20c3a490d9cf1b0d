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

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "dgc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db, "sqlite3"))
	// a second run finds nothing to apply
	require.NoError(t, Migrate(db, "sqlite3"))

	_, err = db.Exec(`INSERT INTO sequence_marks (vmid, object_id, sequence_num, keep, last_seen_ms)
		VALUES ('vm-1', '1@a:b:c', 7, TRUE, 1000)`)
	require.NoError(t, err)

	var seq int64
	require.NoError(t, db.QueryRow(`SELECT sequence_num FROM sequence_marks WHERE vmid = 'vm-1'`).Scan(&seq))
	assert.Equal(t, int64(7), seq)
}

func TestMigrate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		wantMsg string
	}{
		{name: "unreachable database", dialect: "pgx", wantMsg: "migration error"},
		{name: "unknown dialect", dialect: "oracle-ish", wantMsg: "setting dialect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// sqlmock has no expectations, so every statement goose sends fails
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			err = Migrate(db, tt.dialect)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	assert.ErrorIs(t, Migrate(nil, "sqlite3"), ErrNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
