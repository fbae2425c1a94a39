package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
)

// QuotaRepository defines methods to interact with per-user daily counters
type QuotaRepository interface {
	// Increment atomically bumps the counter for (user, date, action) if the
	// current count is below limit, creating the day's row on first use. The
	// compare and increment are one conditional store update, so with N
	// concurrent calls and limit L exactly L succeed.
	//
	// Possible errors:
	// - ErrQuotaExceeded: if the count already reached limit (no mutation)
	// - ErrTransient: if the store is unavailable
	Increment(ctx context.Context, userID uuid.UUID, date string, action entity.ActionType, limit int) error

	// Get returns the day's counter, or a zero-valued counter if the user has
	// taken no rate-limited action that day
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	Get(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLimitCounter, error)
}
