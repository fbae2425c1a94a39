package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
)

// ContentRepository defines methods to interact with posts and ads
type ContentRepository interface {
	// Create persists a new content item (always pending)
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	Create(ctx context.Context, item *entity.ContentItem) error

	// GetByID retrieves a content item
	//
	// Possible errors:
	// - ErrContentNotFound: if the item doesn't exist
	// - ErrTransient: if the store is unavailable
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error)

	// GetForUpdate retrieves a content item holding an exclusive row lock for
	// the remainder of the surrounding store transaction. Used by the approval
	// state machine so two concurrent transitions serialize on the row.
	//
	// Possible errors:
	// - ErrContentNotFound: if the item doesn't exist
	// - ErrTransient: on lock contention or store failure
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error)

	// Update persists approval status, reward issuance and ad activation changes
	//
	// Possible errors:
	// - ErrContentNotFound: if the item doesn't exist
	// - ErrTransient: if the store is unavailable
	Update(ctx context.Context, item *entity.ContentItem) error
}
