package persistence

import (
	"context"
)

// UnitOfWork coordinates operations across multiple repositories inside one
// store transaction. Every atomic unit that spans repositories
// (ledger credit + log append, approval + reward, mutation + audit) runs
// between Begin and Commit; if any step fails the whole scope rolls back, so
// partial mutations are never observable.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetTransactionRepository returns a ledger log repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetContentRepository returns a content repository bound to the current transaction
	GetContentRepository(ctx context.Context) ContentRepository

	// GetEngagementRepository returns an engagement repository bound to the current transaction
	GetEngagementRepository(ctx context.Context) EngagementRepository

	// GetAuditRepository returns an audit repository bound to the current transaction
	GetAuditRepository(ctx context.Context) AuditRepository

	// GetRoleRepository returns a role repository bound to the current transaction
	GetRoleRepository(ctx context.Context) RoleRepository
}
