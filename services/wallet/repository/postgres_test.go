package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raditp/dompet/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

func sampleEntry() *models.LedgerEntry {
	return &models.LedgerEntry{
		ID:        uuid.New(),
		TxnID:     "TXN-001",
		UserID:    42,
		Amount:    decimal.NewFromInt(2500),
		Direction: models.LedgerDirectionCredit,
		CreatedAt: time.Now(),
	}
}

func TestInsertLedgerEntry_New(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewLedgerRepository(db)

	mock.ExpectExec("INSERT INTO wallet_ledger").
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.InsertLedgerEntry(context.Background(), sampleEntry())
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertLedgerEntry_DuplicateConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewLedgerRepository(db)

	mock.ExpectExec("INSERT INTO wallet_ledger").
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.InsertLedgerEntry(context.Background(), sampleEntry())
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertLedgerEntry_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewLedgerRepository(db)

	mock.ExpectExec("INSERT INTO wallet_ledger").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.InsertLedgerEntry(context.Background(), sampleEntry())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBalance(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewLedgerRepository(db)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("7500"))

	balance, err := repo.GetBalance(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(7500)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBalance_EmptyLedgerIsZero(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewLedgerRepository(db)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

	balance, err := repo.GetBalance(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntries(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewLedgerRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "txn_id", "user_id", "amount", "direction", "created_at"}).
		AddRow(uuid.New(), "TXN-002", int64(42), "1000", "CREDIT", now).
		AddRow(uuid.New(), "TXN-001", int64(42), "2500", "CREDIT", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, txn_id, user_id, amount, direction, created_at").
		WithArgs(int64(42), 10).
		WillReturnRows(rows)

	entries, err := repo.ListEntries(context.Background(), 42, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "TXN-002", entries[0].TxnID)
	assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(2500)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
