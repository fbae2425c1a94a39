package persistence

import (
	"context"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
)

// AuditRepository defines methods to interact with the admin audit trail
type AuditRepository interface {
	// Append saves an audit entry. Entries are never updated or deleted, and
	// an append failure must fail the surrounding atomic scope so the audit
	// trail never lags the mutation it documents.
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	Append(ctx context.Context, entry *entity.AuditLogEntry) error

	// List returns the most recent audit entries, newest first
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	List(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error)
}
