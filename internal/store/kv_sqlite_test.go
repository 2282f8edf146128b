// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

func newTestSQLiteKV(t *testing.T) (KeyValueStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	kv := NewSQLiteKeyValueStore(&DB{DB: db, logger: l}, l)
	return kv, mock, db
}

// ── query builders ───────────────────────────────────────────────────────────

func Test_buildGetQuery(t *testing.T) {
	query, args, err := buildGetQuery("X_API_TOKEN")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM kv_store WHERE key = ?", query)
	assert.Equal(t, []any{"X_API_TOKEN"}, args)
}

func Test_buildUpsertQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpsertQuery("k", "v", at)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into kv_store"))
	assert.Contains(t, q, "values (?,?,?)")
	assert.Contains(t, q, "on conflict(key) do update")
	assert.Equal(t, []any{"k", "v", at}, args)
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery("k")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM kv_store WHERE key = ?", query)
	assert.Equal(t, []any{"k"}, args)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestSQLiteGet_Success(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("v"))

	v, err := kv.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteGet_NotFound(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := kv.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteGet_QueryError(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("k").
		WillReturnError(errors.New("disk I/O error"))

	_, err := kv.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

// ── Set / Delete ─────────────────────────────────────────────────────────────

func TestSQLiteSet_Upserts(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("k", "v", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, kv.Set(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSet_ExecError(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("k", "v", sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))

	err := kv.Set(context.Background(), "k", "v")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteDelete(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, kv.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteDelete_ExecError(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs("k").
		WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, kv.Delete(context.Background(), "k"), ErrExecutingQuery)
}

// ── real database ────────────────────────────────────────────────────────────

// TestSQLiteKeyValueStore_RealDatabase runs the store against an on-disk
// sqlite file migrated with the embedded schema.
func TestSQLiteKeyValueStore_RealDatabase(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "dreams.db")

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	kv := NewSQLiteKeyValueStore(db, logger.Nop())
	defer kv.Close()

	require.NoError(t, kv.Set(ctx, TokenKey, "t1"))
	require.NoError(t, kv.Set(ctx, TokenKey, "t2"))

	v, err := kv.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "t2", v)

	require.NoError(t, kv.Delete(ctx, TokenKey))
	_, err = kv.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
