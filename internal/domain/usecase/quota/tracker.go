package quota

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/domain/port/persistence"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/retry"
)

// Tracker enforces per-user daily action quotas. The compare-and-increment is
// one conditional store update, so with limit L and N concurrent requests
// exactly L are allowed regardless of arrival order.
type Tracker struct {
	repo         persistence.QuotaRepository
	limits       entity.DailyLimits
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retryPolicy  retry.Policy
}

// NewTracker creates a quota tracker with the configured daily limits
func NewTracker(repo persistence.QuotaRepository, limits entity.DailyLimits, timeProvider coreport.TimeProvider, logger coreport.Logger) *Tracker {
	return &Tracker{
		repo:         repo,
		limits:       limits,
		timeProvider: timeProvider,
		logger:       logger,
		retryPolicy:  retry.DefaultPolicy(),
	}
}

// CheckAndIncrement consumes one unit of the action's daily quota for the
// given day, or returns QuotaExceeded without mutation if the limit is reached
func (t *Tracker) CheckAndIncrement(ctx context.Context, userID uuid.UUID, action entity.ActionType, date string) error {
	if !entity.IsValidActionType(action) {
		return errs.ErrInvalidActionType
	}

	limit := t.limits.LimitFor(action)
	err := retry.Do(ctx, t.retryPolicy, t.logger, func() error {
		return t.repo.Increment(ctx, userID, date, action, limit)
	})
	if err != nil {
		if errs.IsQuotaExceededError(err) {
			t.logger.Debug("Daily quota exhausted", map[string]any{
				"user_id":     userID.String(),
				"action_type": string(action),
				"limit":       limit,
				"date":        date,
			})
			return errs.NewQuotaError(userID.String(), string(action), limit)
		}
		return err
	}
	return nil
}

// CheckAndIncrementToday is CheckAndIncrement for the current UTC day
func (t *Tracker) CheckAndIncrementToday(ctx context.Context, userID uuid.UUID, action entity.ActionType) error {
	return t.CheckAndIncrement(ctx, userID, action, entity.DateKey(t.timeProvider.Now()))
}

// Remaining returns how much of each daily quota the user still has for the
// given day. Backs the UI's quota display; the store-side counters stay the
// only truth.
func (t *Tracker) Remaining(ctx context.Context, userID uuid.UUID, date string) (*entity.RemainingQuota, error) {
	counter, err := t.repo.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return &entity.RemainingQuota{
		Posts:    clampRemaining(t.limits.Posts, counter.PostsCreated),
		Likes:    clampRemaining(t.limits.Likes, counter.LikesGiven),
		Comments: clampRemaining(t.limits.Comments, counter.CommentsGiven),
	}, nil
}

// RemainingToday is Remaining for the current UTC day
func (t *Tracker) RemainingToday(ctx context.Context, userID uuid.UUID) (*entity.RemainingQuota, error) {
	return t.Remaining(ctx, userID, entity.DateKey(t.timeProvider.Now()))
}

func clampRemaining(limit, used int) int {
	if used >= limit {
		return 0
	}
	return limit - used
}
