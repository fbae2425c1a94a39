package impression

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/domain/port/persistence"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/retry"
)

// Capper limits how often each ad is shown per UTC day. Feed composition asks
// CanShowToday before selecting an ad and calls TryRecordImpression once the
// ad was actually shown.
type Capper struct {
	impressions  persistence.ImpressionRepository
	content      persistence.ContentRepository
	globalCap    int
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retryPolicy  retry.Policy
}

// NewCapper creates an impression capper with the configured global daily cap
func NewCapper(
	impressions persistence.ImpressionRepository,
	content persistence.ContentRepository,
	globalCap int,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Capper {
	return &Capper{
		impressions:  impressions,
		content:      content,
		globalCap:    globalCap,
		timeProvider: timeProvider,
		logger:       logger,
		retryPolicy:  retry.DefaultPolicy(),
	}
}

// TryRecordImpression counts one display of the ad for the given day, or
// returns ImpressionCapped without mutation once the daily cap is reached.
// Same conditional-update contract as the quota tracker, scoped by (ad, date).
func (c *Capper) TryRecordImpression(ctx context.Context, adID uuid.UUID, date string) error {
	dailyCap, err := c.effectiveCap(ctx, adID)
	if err != nil {
		return err
	}

	err = retry.Do(ctx, c.retryPolicy, c.logger, func() error {
		return c.impressions.Increment(ctx, adID, date, dailyCap)
	})
	if err != nil {
		if errs.IsTransientError(err) {
			return err
		}
		c.logger.Debug("Ad impression denied", map[string]any{
			"ad_id": adID.String(),
			"date":  date,
			"cap":   dailyCap,
		})
		return err
	}
	return nil
}

// TryRecordImpressionToday is TryRecordImpression for the current UTC day
func (c *Capper) TryRecordImpressionToday(ctx context.Context, adID uuid.UUID) error {
	return c.TryRecordImpression(ctx, adID, entity.DateKey(c.timeProvider.Now()))
}

// CanShowToday is the read-only eligibility predicate used before selecting
// an ad for display on the given day
func (c *Capper) CanShowToday(ctx context.Context, adID uuid.UUID, date string) (bool, error) {
	dailyCap, err := c.effectiveCap(ctx, adID)
	if err != nil {
		return false, err
	}

	counter, err := c.impressions.Get(ctx, adID, date)
	if err != nil {
		return false, err
	}
	return !counter.Exhausted(dailyCap), nil
}

// CanShowNow is CanShowToday for the current UTC day
func (c *Capper) CanShowNow(ctx context.Context, adID uuid.UUID) (bool, error) {
	return c.CanShowToday(ctx, adID, entity.DateKey(c.timeProvider.Now()))
}

// effectiveCap resolves the per-ad cap override against the global default.
// The ad must exist and be an ad, not a post.
func (c *Capper) effectiveCap(ctx context.Context, adID uuid.UUID) (int, error) {
	item, err := c.content.GetByID(ctx, adID)
	if err != nil {
		return 0, err
	}
	if item.Kind != entity.KindAd {
		return 0, errs.ErrContentNotFound
	}
	return item.EffectiveDailyCap(c.globalCap), nil
}
