package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
)

// AccountRepository defines essential methods to interact with account data
type AccountRepository interface {
	// GetByID retrieves an account by its user ID
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account exists for the user
	// - ErrTransient: if the store is unavailable
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.Account, error)

	// Create creates a new account at user registration
	//
	// Possible errors:
	// - ErrDuplicateAccount: if an account for the user already exists
	// - ErrTransient: if the store is unavailable
	Create(ctx context.Context, account *entity.Account) error

	// ApplyDeltas atomically applies both balance deltas under a row lock and
	// returns the updated account. This is the single mutation path for
	// balances; concurrent callers on the same account are linearized by the
	// store, so no update is ever lost or applied twice.
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account exists for the user
	// - ErrInsufficientFunds: if either balance would go negative (no effect)
	// - ErrTransient: on lock contention or store failure
	ApplyDeltas(ctx context.Context, userID uuid.UUID, walletDelta, zukaDelta int64) (*entity.Account, error)

	// UpdateVerificationStatus sets the verification state and returns the
	// previous value for the audit trail
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account exists for the user
	// - ErrTransient: if the store is unavailable
	UpdateVerificationStatus(ctx context.Context, userID uuid.UUID, status string) (previous string, err error)

	// Delete removes the account. Only reachable through the audited admin
	// delete; the account's ledger entries and audit records are retained.
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account exists for the user
	// - ErrTransient: if the store is unavailable
	Delete(ctx context.Context, userID uuid.UUID) error
}
