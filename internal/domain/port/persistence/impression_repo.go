package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
)

// ImpressionRepository defines methods to interact with per-ad daily impression counters
type ImpressionRepository interface {
	// Increment atomically bumps the (ad, date) counter if it is below cap,
	// creating the day's row on first use. Same conditional-update contract
	// as QuotaRepository.Increment.
	//
	// Possible errors:
	// - ErrImpressionCapped: if the count already reached cap (no mutation)
	// - ErrTransient: if the store is unavailable
	Increment(ctx context.Context, adID uuid.UUID, date string, cap int) error

	// Get returns the day's impression counter, or a zero-valued counter if
	// the ad has not been shown that day
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	Get(ctx context.Context, adID uuid.UUID, date string) (*entity.AdImpressionCounter, error)
}
