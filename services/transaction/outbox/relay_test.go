package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/services/transaction/mocks"
)

func testRelayConfig() models.OutboxConfig {
	return models.OutboxConfig{
		PollInterval: 10,
		BatchSize:    10,
		MaxRetries:   1,
	}
}

func pendingEvent(txnID string) *models.OutboxEvent {
	return &models.OutboxEvent{
		ID:        uuid.New(),
		TxnID:     txnID,
		Topic:     "txn.completed",
		Key:       txnID,
		Payload:   []byte(`{"requestId":"` + txnID + `","success":true}`),
		Status:    models.OutboxStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestDrainDeliversAndMarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)

	event := pendingEvent("T1")
	mockRepo.EXPECT().FetchPendingOutbox(gomock.Any(), 10).Return([]*models.OutboxEvent{event}, nil)
	mockGW.EXPECT().PublishOutbox(gomock.Any(), event).Return(nil)
	mockRepo.EXPECT().MarkOutboxDelivered(gomock.Any(), event.ID).Return(nil)

	relay := NewRelay(testRelayConfig(), mockRepo, mockGW, logrus.New())
	require.NoError(t, relay.Drain(context.Background()))
}

func TestDrainKeepsFailedEventPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)

	event := pendingEvent("T1")
	mockRepo.EXPECT().FetchPendingOutbox(gomock.Any(), 10).Return([]*models.OutboxEvent{event}, nil)
	// Publish fails through all retry attempts
	mockGW.EXPECT().PublishOutbox(gomock.Any(), event).Return(errors.New("nsqd unreachable")).Times(2)
	mockRepo.EXPECT().RecordOutboxAttempt(gomock.Any(), event.ID).Return(nil)
	// MarkOutboxDelivered must not be called

	relay := NewRelay(testRelayConfig(), mockRepo, mockGW, logrus.New())
	require.NoError(t, relay.Drain(context.Background()))
}

func TestDrainContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)

	bad := pendingEvent("T1")
	good := pendingEvent("T2")

	mockRepo.EXPECT().FetchPendingOutbox(gomock.Any(), 10).Return([]*models.OutboxEvent{bad, good}, nil)
	mockGW.EXPECT().PublishOutbox(gomock.Any(), bad).Return(errors.New("boom")).Times(2)
	mockRepo.EXPECT().RecordOutboxAttempt(gomock.Any(), bad.ID).Return(nil)
	mockGW.EXPECT().PublishOutbox(gomock.Any(), good).Return(nil)
	mockRepo.EXPECT().MarkOutboxDelivered(gomock.Any(), good.ID).Return(nil)

	relay := NewRelay(testRelayConfig(), mockRepo, mockGW, logrus.New())
	require.NoError(t, relay.Drain(context.Background()))
}

func TestDrainPropagatesFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)

	fetchErr := errors.New("db down")
	mockRepo.EXPECT().FetchPendingOutbox(gomock.Any(), 10).Return(nil, fetchErr)

	relay := NewRelay(testRelayConfig(), mockRepo, mockGW, logrus.New())
	assert.ErrorIs(t, relay.Drain(context.Background()), fetchErr)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)

	mockRepo.EXPECT().FetchPendingOutbox(gomock.Any(), 10).Return([]*models.OutboxEvent{}, nil).AnyTimes()

	relay := NewRelay(testRelayConfig(), mockRepo, mockGW, logrus.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after context cancellation")
	}
}
