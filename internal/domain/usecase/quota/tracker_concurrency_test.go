package quota_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/quota"
)

// memQuotaStore is an in-memory counter store honoring the atomic Increment
// contract: the compare and the bump happen under one lock, so with limit L
// and N concurrent calls exactly L succeed.
type memQuotaStore struct {
	mu       sync.Mutex
	counters map[string]*entity.DailyLimitCounter
}

func newMemQuotaStore() *memQuotaStore {
	return &memQuotaStore{counters: make(map[string]*entity.DailyLimitCounter)}
}

func (s *memQuotaStore) Increment(ctx context.Context, userID uuid.UUID, date string, action entity.ActionType, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userID.String() + "|" + date
	counter, ok := s.counters[key]
	if !ok {
		counter = &entity.DailyLimitCounter{UserID: userID, LimitDate: date}
		s.counters[key] = counter
	}

	if counter.Count(action) >= limit {
		return errs.ErrQuotaExceeded
	}

	switch action {
	case entity.ActionPost:
		counter.PostsCreated++
	case entity.ActionLike:
		counter.LikesGiven++
	case entity.ActionComment:
		counter.CommentsGiven++
	}
	return nil
}

func (s *memQuotaStore) Get(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLimitCounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if counter, ok := s.counters[userID.String()+"|"+date]; ok {
		copied := *counter
		return &copied, nil
	}
	return &entity.DailyLimitCounter{UserID: userID, LimitDate: date}, nil
}

func TestTracker_ConcurrentCheckAndIncrement(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	t.Run("should grant exactly the like limit across concurrent callers", func(t *testing.T) {
		store := newMemQuotaStore()
		tracker := quota.NewTracker(store, testLimits, newTestTimeProvider(), newTestLogger())

		const callers = 50
		var wg sync.WaitGroup
		results := make(chan error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- tracker.CheckAndIncrementToday(ctx, userID, entity.ActionLike)
			}()
		}
		wg.Wait()
		close(results)

		granted, denied := 0, 0
		for err := range results {
			if err == nil {
				granted++
				continue
			}
			assert.ErrorIs(t, err, errs.ErrQuotaExceeded)
			denied++
		}

		assert.Equal(t, testLimits.Likes, granted)
		assert.Equal(t, callers-testLimits.Likes, denied)

		remaining, err := tracker.RemainingToday(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining.Likes)

		counter, err := store.Get(ctx, userID, entity.DateKey(fixedTime))
		require.NoError(t, err)
		assert.Equal(t, testLimits.Likes, counter.LikesGiven)
	})

	t.Run("should grant exactly the post limit across concurrent callers", func(t *testing.T) {
		store := newMemQuotaStore()
		tracker := quota.NewTracker(store, testLimits, newTestTimeProvider(), newTestLogger())

		const callers = 12
		var wg sync.WaitGroup
		results := make(chan error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- tracker.CheckAndIncrementToday(ctx, userID, entity.ActionPost)
			}()
		}
		wg.Wait()
		close(results)

		granted := 0
		for err := range results {
			if err == nil {
				granted++
			}
		}

		assert.Equal(t, testLimits.Posts, granted)

		counter, err := store.Get(ctx, userID, entity.DateKey(fixedTime))
		require.NoError(t, err)
		assert.Equal(t, testLimits.Posts, counter.PostsCreated)
	})
}
