package approval

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

// Rewards is the configured payout policy for approved content
type Rewards struct {
	// PostApproval is the one-time ZukaCoin credit for an approved post
	PostApproval int64
}

// StateMachine drives the pending -> approved | rejected lifecycle of content.
// Approving a pending post credits the owner exactly once; the status change,
// reward issuance, ledger credit and audit entry commit as one atomic unit.
type StateMachine struct {
	uow          persistence.UnitOfWork
	ledger       *ledger.Service
	gate         *authz.Gate
	rewards      Rewards
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retryPolicy  retry.Policy
}

// NewStateMachine creates an approval state machine
func NewStateMachine(
	uow persistence.UnitOfWork,
	ledgerService *ledger.Service,
	gate *authz.Gate,
	rewards Rewards,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *StateMachine {
	return &StateMachine{
		uow:          uow,
		ledger:       ledgerService,
		gate:         gate,
		rewards:      rewards,
		timeProvider: timeProvider,
		logger:       logger,
		retryPolicy:  retry.DefaultPolicy(),
	}
}

// Transition moves a content item from pending to the target terminal state.
// Only admins and moderators may call it. Re-approving an approved item is an
// idempotent no-op returning the current state; every other transition out of
// a terminal state fails with InvalidTransition and has no side effects.
func (m *StateMachine) Transition(ctx context.Context, adminID, contentID uuid.UUID, target entity.ApprovalStatus) (*entity.ContentItem, error) {
	if target != entity.StatusApproved && target != entity.StatusRejected {
		return nil, errs.NewTransitionError(contentID.String(), "", string(target))
	}

	if err := m.gate.RequireRole(ctx, adminID, entity.RoleAdmin, entity.RoleModerator); err != nil {
		return nil, err
	}

	var item *entity.ContentItem
	err := retry.Do(ctx, m.retryPolicy, m.logger, func() error {
		var opErr error
		item, opErr = m.transitionOnce(ctx, adminID, contentID, target)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("Content transition applied", map[string]any{
		"admin_id":   adminID.String(),
		"content_id": contentID.String(),
		"status":     string(item.ApprovalStatus),
		"kind":       string(item.Kind),
	})
	return item, nil
}

func (m *StateMachine) transitionOnce(ctx context.Context, adminID, contentID uuid.UUID, target entity.ApprovalStatus) (*entity.ContentItem, error) {
	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	// The row lock serializes concurrent transitions on the same item: the
	// second caller observes the committed terminal state.
	content := m.uow.GetContentRepository(txCtx)
	item, err := content.GetForUpdate(txCtx, contentID)
	if err != nil {
		m.rollback(txCtx)
		return nil, err
	}

	if item.ApprovalStatus == target && target == entity.StatusApproved {
		// Already approved: no second credit, report the current state
		m.rollback(txCtx)
		return item, nil
	}
	if !item.CanTransition(target) {
		m.rollback(txCtx)
		return nil, errs.NewTransitionError(contentID.String(), string(item.ApprovalStatus), string(target))
	}

	item.ApprovalStatus = target
	auditAction := entity.AuditRejectContent

	if target == entity.StatusApproved {
		auditAction = entity.AuditApproveContent
		if err := m.applyApprovalEffects(txCtx, item); err != nil {
			m.rollback(txCtx)
			return nil, err
		}
	}

	if err := content.Update(txCtx, item); err != nil {
		m.rollback(txCtx)
		return nil, err
	}

	entry, err := entity.NewAuditLogEntry(adminID, auditAction, entity.TargetContent, item.ID,
		map[string]any{
			"kind":          string(item.Kind),
			"owner_id":      item.OwnerID.String(),
			"reward_issued": item.RewardIssued,
		}, m.timeProvider)
	if err != nil {
		m.rollback(txCtx)
		return nil, err
	}
	if err := m.uow.GetAuditRepository(txCtx).Append(txCtx, entry); err != nil {
		m.rollback(txCtx)
		return nil, fmt.Errorf("audit write failed, transition rolled back: %w", err)
	}

	if err := m.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return item, nil
}

// applyApprovalEffects issues the one-time approval effects inside the open
// transaction: posts credit the owner, ads activate for spend tracking.
func (m *StateMachine) applyApprovalEffects(txCtx context.Context, item *entity.ContentItem) error {
	if item.RewardIssued {
		return nil
	}

	switch item.Kind {
	case entity.KindPost:
		if m.rewards.PostApproval > 0 {
			_, err := m.ledger.CreditInScope(txCtx, item.OwnerID, entity.BalanceZuka,
				m.rewards.PostApproval, entity.TypeSocialReward, item.ID.String())
			if err != nil {
				return err
			}
		}
	case entity.KindAd:
		// Approval opens the ad for impression and spend tracking; the owner
		// is never credited for it.
		item.Active = true
	}

	item.MarkRewardIssued()
	return nil
}

func (m *StateMachine) rollback(txCtx context.Context) {
	if err := m.uow.Rollback(txCtx); err != nil {
		m.logger.Error("Rollback failed", map[string]any{"error": err.Error()})
	}
}
