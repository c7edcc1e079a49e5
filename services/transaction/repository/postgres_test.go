package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/services/transaction"
)

func setupTransactionRepoTest(t *testing.T) (transaction.TransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewTransactionRepository(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestGetByTxnID(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "txn_id", "from_user_id", "to_user_id", "amount", "status", "reason", "pg_ref", "created_at", "updated_at",
	}).AddRow(id, "T1", int64(1), int64(2), "100.00", "PENDING", "", "pg-ref-1", now, now)

	mock.ExpectQuery("^\\s*SELECT (.+) FROM transactions\\s+WHERE txn_id").
		WithArgs("T1").
		WillReturnRows(rows)

	txn, err := repo.GetByTxnID(context.Background(), "T1")
	require.NoError(t, err)
	assert.Equal(t, "T1", txn.TxnID)
	assert.Equal(t, int64(2), txn.ToUserID)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, models.TxnStatusPending, txn.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTxnIDNotFound(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^\\s*SELECT (.+) FROM transactions").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	txn, err := repo.GetByTxnID(context.Background(), "missing")
	assert.Nil(t, txn)
	assert.ErrorIs(t, err, transaction.ErrTxnNotFound)
}

func TestCreateIfAbsent(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	err := repo.CreateIfAbsent(context.Background(), &models.Transaction{
		ID:         uuid.New(),
		TxnID:      "T1",
		FromUserID: 1,
		ToUserID:   2,
		Amount:     decimal.RequireFromString("100.00"),
		Status:     models.TxnStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsentDuplicateIsNoop(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	// ON CONFLICT DO NOTHING reports zero affected rows; that is not an error
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateIfAbsent(context.Background(), &models.Transaction{
		ID:     uuid.New(),
		TxnID:  "T1",
		Amount: decimal.NewFromInt(10),
		Status: models.TxnStatusPending,
	})

	assert.NoError(t, err)
}

func TestMarkTerminalWritesOutboxAtomically(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions").
		WithArgs("T1", models.TxnStatusSuccess, "", models.TxnStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO txn_outbox").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outbox := &models.OutboxEvent{
		ID:        uuid.New(),
		TxnID:     "T1",
		Topic:     "txn.completed",
		Key:       "T1",
		Payload:   []byte(`{"requestId":"T1","success":true}`),
		Status:    models.OutboxStatusPending,
		CreatedAt: time.Now(),
	}

	updated, err := repo.MarkTerminal(context.Background(), "T1", models.TxnStatusSuccess, "", outbox)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkTerminalLostRaceRollsBack(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions").
		WithArgs("T1", models.TxnStatusSuccess, "", models.TxnStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	outbox := &models.OutboxEvent{ID: uuid.New(), TxnID: "T1", Topic: "txn.completed", Key: "T1"}

	updated, err := repo.MarkTerminal(context.Background(), "T1", models.TxnStatusSuccess, "", outbox)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPendingOutbox(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "txn_id", "topic", "key", "payload", "status", "attempts", "created_at", "delivered_at",
	}).AddRow(id, "T1", "txn.completed", "T1", []byte(`{}`), "PENDING", 0, now, nil)

	mock.ExpectQuery("^\\s*SELECT (.+) FROM txn_outbox").
		WithArgs(models.OutboxStatusPending, 50).
		WillReturnRows(rows)

	events, err := repo.FetchPendingOutbox(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "T1", events[0].TxnID)
	assert.Equal(t, models.OutboxStatusPending, events[0].Status)
	assert.Nil(t, events[0].DeliveredAt)
}

func TestMarkOutboxDelivered(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("UPDATE txn_outbox").
		WithArgs(id, models.OutboxStatusDelivered).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkOutboxDelivered(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordOutboxAttempt(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("UPDATE txn_outbox").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordOutboxAttempt(context.Background(), id)
	assert.NoError(t, err)
}
