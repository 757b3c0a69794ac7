package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0

	err := Do(context.Background(), Options{Attempts: 3}, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	retries := []int{}

	err := Do(context.Background(), Options{
		Attempts: 3,
		OnRetry:  func(attempt int) { retries = append(retries, attempt) },
	}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{2, 3}, retries)
}

func TestDo_ExhaustsAttemptsAndKeepsLastError(t *testing.T) {
	calls := 0
	lastErr := errors.New("still broken")

	err := Do(context.Background(), Options{Attempts: 3}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("broken")
		}
		return lastErr
	})

	assert.Equal(t, 3, calls)
	assert.Equal(t, lastErr, err)
}

func TestDo_StopsOnNonRetryableError(t *testing.T) {
	calls := 0
	fatal := errors.New("fatal")

	err := Do(context.Background(), Options{
		Attempts:  5,
		Retryable: func(err error) bool { return !errors.Is(err, fatal) },
	}, func(ctx context.Context) error {
		calls++
		return fatal
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, fatal, err)
}

func TestDo_ContextCancelStopsTheLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := Do(ctx, Options{Attempts: 5, Delay: Linear(time.Hour)}, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("broken")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroAttemptsStillRunsOnce(t *testing.T) {
	calls := 0

	_ = Do(context.Background(), Options{}, func(ctx context.Context) error {
		calls++
		return errors.New("broken")
	})

	assert.Equal(t, 1, calls)
}

func TestLinear_ScalesWithAttempt(t *testing.T) {
	delay := Linear(100 * time.Millisecond)

	assert.Equal(t, 100*time.Millisecond, delay(1))
	assert.Equal(t, 200*time.Millisecond, delay(2))
	assert.Equal(t, 300*time.Millisecond, delay(3))
}
