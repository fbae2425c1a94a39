package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
)

// TransactionRepository defines methods to interact with the append-only ledger log
type TransactionRepository interface {
	// Append saves a new ledger entry. Entries are never updated or deleted.
	//
	// Possible errors:
	// - ErrConstraintViolation: if the entry violates a store constraint
	// - ErrTransient: if the store is unavailable
	Append(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns the most recent ledger entries for an account,
	// newest first
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)
}
