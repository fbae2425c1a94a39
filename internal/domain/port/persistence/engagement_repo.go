package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
)

// EngagementRepository defines methods to interact with engagement records
type EngagementRepository interface {
	// Create inserts an engagement record. The store enforces uniqueness of
	// (post, user, type); with two concurrent inserts exactly one succeeds.
	//
	// Possible errors:
	// - ErrDuplicateEngagement: if the (post, user, type) triple already exists
	// - ErrTransient: if the store is unavailable
	Create(ctx context.Context, record *entity.EngagementRecord) error

	// Exists reports whether the (post, user, type) triple is already recorded
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	Exists(ctx context.Context, postID, userID uuid.UUID, engagementType entity.EngagementType) (bool, error)
}
