package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestExecuteSucceedsFirstAttempt(t *testing.T) {
	r := New(testConfig(), logrus.New())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteRetriesUntilSuccess(t *testing.T) {
	r := New(testConfig(), logrus.New())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteExhaustsRetries(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 2
	r := New(cfg, logrus.New())

	calls := 0
	boom := errors.New("boom")
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestExecuteStopsOnNonRetryableError(t *testing.T) {
	cfg := testConfig()
	fatal := errors.New("fatal")
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, fatal) }
	r := New(cfg, logrus.New())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteRespectsContextCancellation(t *testing.T) {
	r := New(testConfig(), logrus.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
}
