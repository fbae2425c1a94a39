package retry_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/retry"
	"github.com/zukafarm/reward-engine/mocks/port/core"
)

func newTestLogger() *core.MockLogger {
	logger := new(core.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func fastPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: 3,
		Interval:    time.Millisecond,
		MaxInterval: 5 * time.Millisecond,
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("should return on first success", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, fastPolicy(), newTestLogger(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("should retry transient failures until success", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, fastPolicy(), newTestLogger(), func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("%w: serialization failure", errs.ErrTransient)
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("should give up after the attempt budget", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, fastPolicy(), newTestLogger(), func() error {
			calls++
			return fmt.Errorf("%w: deadlock detected", errs.ErrTransient)
		})

		assert.ErrorIs(t, err, errs.ErrTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("should not retry deterministic failures", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, fastPolicy(), newTestLogger(), func() error {
			calls++
			return errs.ErrQuotaExceeded
		})

		assert.ErrorIs(t, err, errs.ErrQuotaExceeded)
		assert.Equal(t, 1, calls)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		canceledCtx, cancel := context.WithCancel(ctx)
		cancel()

		// Long interval so the canceled context always wins the select
		policy := retry.Policy{MaxAttempts: 3, Interval: time.Minute, MaxInterval: time.Minute}
		calls := 0
		err := retry.Do(canceledCtx, policy, newTestLogger(), func() error {
			calls++
			return fmt.Errorf("%w: connection reset", errs.ErrTransient)
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
