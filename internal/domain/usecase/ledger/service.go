package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/domain/port/persistence"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/retry"
)

// Service is the account ledger: the sole mutation path for balances and the
// writer of the append-only transaction log. Every operation is one atomic
// unit against the store, so under concurrent calls on the same account the
// final balance is the starting balance plus the sum of applied deltas.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retryPolicy  retry.Policy
}

// NewService creates a new ledger service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		retryPolicy:  retry.DefaultPolicy(),
	}
}

// WithRetryPolicy overrides the transient-error retry policy
func (s *Service) WithRetryPolicy(policy retry.Policy) *Service {
	s.retryPolicy = policy
	return s
}

// Credit adds amount (> 0) to one of the user's balances and appends the
// matching ledger entry in the same atomic scope
func (s *Service) Credit(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.BalanceKind,
	amount int64,
	txType entity.TransactionType,
	reference string,
) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	return s.applyEntry(ctx, userID, kind, amount, txType, reference)
}

// Debit subtracts amount (> 0) from one of the user's balances, failing with
// InsufficientFunds and no effect if the balance would go negative
func (s *Service) Debit(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.BalanceKind,
	amount int64,
	txType entity.TransactionType,
	reference string,
) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	return s.applyEntry(ctx, userID, kind, -amount, txType, reference)
}

// CreditInScope appends a credit inside an already-open unit of work. Used by
// collaborators (approval, engagement) whose own mutation must commit or roll
// back together with the credit. The caller owns commit/rollback.
func (s *Service) CreditInScope(
	txCtx context.Context,
	userID uuid.UUID,
	kind entity.BalanceKind,
	amount int64,
	txType entity.TransactionType,
	reference string,
) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	return s.CreditInScopeSigned(txCtx, userID, kind, amount, txType, reference)
}

// AdjustByAdmin applies both deltas as one atomic unit and writes the audit
// entry in the same scope; if the audit write cannot be committed the balance
// change rolls back. Callers are expected to have passed the role gate.
func (s *Service) AdjustByAdmin(
	ctx context.Context,
	adminID, userID uuid.UUID,
	walletDelta, zukaDelta int64,
	reason string,
) (*entity.Account, error) {
	if walletDelta == 0 && zukaDelta == 0 {
		return nil, errs.ErrInvalidAmount
	}

	var account *entity.Account
	err := retry.Do(ctx, s.retryPolicy, s.logger, func() error {
		var opErr error
		account, opErr = s.adjustByAdminOnce(ctx, adminID, userID, walletDelta, zukaDelta, reason)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin balance adjustment applied", map[string]any{
		"admin_id":     adminID.String(),
		"user_id":      userID.String(),
		"wallet_delta": walletDelta,
		"zuka_delta":   zukaDelta,
		"reason":       reason,
	})
	return account, nil
}

func (s *Service) adjustByAdminOnce(
	ctx context.Context,
	adminID, userID uuid.UUID,
	walletDelta, zukaDelta int64,
	reason string,
) (*entity.Account, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.uow.GetAccountRepository(txCtx).ApplyDeltas(txCtx, userID, walletDelta, zukaDelta)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	// One ledger entry per balance the adjustment touched
	transactions := s.uow.GetTransactionRepository(txCtx)
	if walletDelta != 0 {
		txn, err := entity.NewTransaction(userID, entity.BalanceWallet, walletDelta,
			account.WalletBalance(), entity.TypeAdminAdjustment, reason, s.timeProvider)
		if err != nil {
			s.rollback(txCtx)
			return nil, err
		}
		if err := transactions.Append(txCtx, txn); err != nil {
			s.rollback(txCtx)
			return nil, err
		}
	}
	if zukaDelta != 0 {
		txn, err := entity.NewTransaction(userID, entity.BalanceZuka, zukaDelta,
			account.ZukaBalance(), entity.TypeAdminAdjustment, reason, s.timeProvider)
		if err != nil {
			s.rollback(txCtx)
			return nil, err
		}
		if err := transactions.Append(txCtx, txn); err != nil {
			s.rollback(txCtx)
			return nil, err
		}
	}

	entry, err := entity.NewAuditLogEntry(adminID, entity.AuditUpdateBalance, entity.TargetUser, userID,
		map[string]any{
			"reason":       reason,
			"wallet_delta": walletDelta,
			"zuka_delta":   zukaDelta,
		}, s.timeProvider)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}
	if err := s.uow.GetAuditRepository(txCtx).Append(txCtx, entry); err != nil {
		s.rollback(txCtx)
		return nil, fmt.Errorf("audit write failed, adjustment rolled back: %w", err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount returns the current balances for a user
func (s *Service) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.Account, error) {
	return s.uow.GetAccountRepository(ctx).GetByID(ctx, userID)
}

// ListTransactions returns the most recent ledger entries for a user
func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, limit)
}

func (s *Service) applyEntry(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.BalanceKind,
	delta int64,
	txType entity.TransactionType,
	reference string,
) (*entity.Transaction, error) {
	var txn *entity.Transaction
	err := retry.Do(ctx, s.retryPolicy, s.logger, func() error {
		var opErr error
		txn, opErr = s.applyEntryOnce(ctx, userID, kind, delta, txType, reference)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Ledger entry applied", map[string]any{
		"user_id":       userID.String(),
		"balance":       string(kind),
		"amount":        delta,
		"balance_after": txn.BalanceAfter,
		"type":          string(txType),
	})
	return txn, nil
}

func (s *Service) applyEntryOnce(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.BalanceKind,
	delta int64,
	txType entity.TransactionType,
	reference string,
) (*entity.Transaction, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := s.CreditInScopeSigned(txCtx, userID, kind, delta, txType, reference)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return txn, nil
}

// CreditInScopeSigned is the signed-delta form of CreditInScope, shared by
// Credit and Debit
func (s *Service) CreditInScopeSigned(
	txCtx context.Context,
	userID uuid.UUID,
	kind entity.BalanceKind,
	delta int64,
	txType entity.TransactionType,
	reference string,
) (*entity.Transaction, error) {
	if delta == 0 {
		return nil, errs.ErrInvalidAmount
	}

	var walletDelta, zukaDelta int64
	if kind == entity.BalanceZuka {
		zukaDelta = delta
	} else {
		walletDelta = delta
	}

	account, err := s.uow.GetAccountRepository(txCtx).ApplyDeltas(txCtx, userID, walletDelta, zukaDelta)
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(userID, kind, delta, account.BalanceFor(kind), txType, reference, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetTransactionRepository(txCtx).Append(txCtx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *Service) rollback(txCtx context.Context) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Rollback failed", map[string]any{"error": err.Error()})
	}
}
