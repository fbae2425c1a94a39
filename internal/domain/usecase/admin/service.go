package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/domain/port/persistence"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/authz"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/ledger"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/retry"
)

// Service hosts the privileged admin operations. Every mutation passes the
// role gate first and writes its audit entry in the same atomic scope as the
// mutation, so the audit trail never lags the state it documents.
type Service struct {
	uow          persistence.UnitOfWork
	ledger       *ledger.Service
	gate         *authz.Gate
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retryPolicy  retry.Policy
}

// NewService creates an admin service
func NewService(
	uow persistence.UnitOfWork,
	ledgerService *ledger.Service,
	gate *authz.Gate,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		ledger:       ledgerService,
		gate:         gate,
		timeProvider: timeProvider,
		logger:       logger,
		retryPolicy:  retry.DefaultPolicy(),
	}
}

// AdjustBalance applies wallet and ZukaCoin deltas to a user's account,
// audited, gated on the admin role
func (s *Service) AdjustBalance(ctx context.Context, adminID, userID uuid.UUID, walletDelta, zukaDelta int64, reason string) (*entity.Account, error) {
	if err := s.gate.RequireRole(ctx, adminID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	return s.ledger.AdjustByAdmin(ctx, adminID, userID, walletDelta, zukaDelta, reason)
}

// UpdateVerificationStatus changes a user's identity verification state,
// audited with the old and new values
func (s *Service) UpdateVerificationStatus(ctx context.Context, adminID, userID uuid.UUID, status string) error {
	if err := s.gate.RequireRole(ctx, adminID, entity.RoleAdmin); err != nil {
		return err
	}
	if !entity.IsValidVerificationStatus(status) {
		return errs.ErrInvalidRequest
	}

	return retry.Do(ctx, s.retryPolicy, s.logger, func() error {
		return s.updateVerificationOnce(ctx, adminID, userID, status)
	})
}

func (s *Service) updateVerificationOnce(ctx context.Context, adminID, userID uuid.UUID, status string) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	previous, err := s.uow.GetAccountRepository(txCtx).UpdateVerificationStatus(txCtx, userID, status)
	if err != nil {
		s.rollback(txCtx)
		return err
	}

	entry, err := entity.NewAuditLogEntry(adminID, entity.AuditUpdateVerification, entity.TargetUser, userID,
		map[string]any{"old_status": previous, "new_status": status}, s.timeProvider)
	if err != nil {
		s.rollback(txCtx)
		return err
	}
	if err := s.uow.GetAuditRepository(txCtx).Append(txCtx, entry); err != nil {
		s.rollback(txCtx)
		return fmt.Errorf("audit write failed, verification change rolled back: %w", err)
	}

	return s.uow.Commit(txCtx)
}

// DeleteUser removes a user's account and role grants, audited. The ledger
// log and audit trail are retained.
func (s *Service) DeleteUser(ctx context.Context, adminID, userID uuid.UUID, reason string) error {
	if err := s.gate.RequireRole(ctx, adminID, entity.RoleAdmin); err != nil {
		return err
	}

	return retry.Do(ctx, s.retryPolicy, s.logger, func() error {
		return s.deleteUserOnce(ctx, adminID, userID, reason)
	})
}

func (s *Service) deleteUserOnce(ctx context.Context, adminID, userID uuid.UUID, reason string) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := s.uow.GetAccountRepository(txCtx).Delete(txCtx, userID); err != nil {
		s.rollback(txCtx)
		return err
	}
	if err := s.uow.GetRoleRepository(txCtx).RemoveAllForUser(txCtx, userID); err != nil {
		s.rollback(txCtx)
		return err
	}

	entry, err := entity.NewAuditLogEntry(adminID, entity.AuditDeleteUser, entity.TargetUser, userID,
		map[string]any{"reason": reason}, s.timeProvider)
	if err != nil {
		s.rollback(txCtx)
		return err
	}
	if err := s.uow.GetAuditRepository(txCtx).Append(txCtx, entry); err != nil {
		s.rollback(txCtx)
		return fmt.Errorf("audit write failed, user deletion rolled back: %w", err)
	}

	return s.uow.Commit(txCtx)
}

// AssignRole grants a role to a user, audited, gated on the admin role
func (s *Service) AssignRole(ctx context.Context, adminID, userID uuid.UUID, role entity.Role) error {
	if err := s.gate.RequireRole(ctx, adminID, entity.RoleAdmin); err != nil {
		return err
	}
	if !entity.IsValidRole(role) {
		return errs.ErrInvalidRole
	}

	return retry.Do(ctx, s.retryPolicy, s.logger, func() error {
		return s.assignRoleOnce(ctx, adminID, userID, role)
	})
}

func (s *Service) assignRoleOnce(ctx context.Context, adminID, userID uuid.UUID, role entity.Role) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := s.uow.GetRoleRepository(txCtx).Assign(txCtx, userID, role, adminID); err != nil {
		s.rollback(txCtx)
		return err
	}

	entry, err := entity.NewAuditLogEntry(adminID, entity.AuditAssignRole, entity.TargetUser, userID,
		map[string]any{"role": string(role)}, s.timeProvider)
	if err != nil {
		s.rollback(txCtx)
		return err
	}
	if err := s.uow.GetAuditRepository(txCtx).Append(txCtx, entry); err != nil {
		s.rollback(txCtx)
		return fmt.Errorf("audit write failed, role grant rolled back: %w", err)
	}

	return s.uow.Commit(txCtx)
}

// ListAuditLog returns the most recent audit entries
func (s *Service) ListAuditLog(ctx context.Context, adminID uuid.UUID, limit int) ([]*entity.AuditLogEntry, error) {
	if err := s.gate.RequireRole(ctx, adminID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	return s.uow.GetAuditRepository(ctx).List(ctx, limit)
}

func (s *Service) rollback(txCtx context.Context) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Rollback failed", map[string]any{"error": err.Error()})
	}
}
