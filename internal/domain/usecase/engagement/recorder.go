package engagement

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/domain/port/persistence"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/ledger"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/quota"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/retry"
)

// Rewards is the configured ZukaCoin payout per engagement type
type Rewards struct {
	Like    int64
	Comment int64
	Share   int64
}

// AmountFor returns the payout for the given engagement type
func (r Rewards) AmountFor(engagementType entity.EngagementType) int64 {
	switch engagementType {
	case entity.EngagementLike:
		return r.Like
	case entity.EngagementComment:
		return r.Comment
	case entity.EngagementShare:
		return r.Share
	}
	return 0
}

// Result reports a successful engagement and the credit it earned
type Result struct {
	Record   *entity.EngagementRecord
	Credited int64
}

// Recorder records like/comment/share events. Preconditions short-circuit in
// order: self-engagement, daily quota (likes/comments only), uniqueness. The
// unique insert and the credit commit as one atomic unit, so a (post, user,
// type) triple is credited at most once across all time.
type Recorder struct {
	uow          persistence.UnitOfWork
	quota        *quota.Tracker
	ledger       *ledger.Service
	rewards      Rewards
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retryPolicy  retry.Policy
}

// NewRecorder creates an engagement recorder
func NewRecorder(
	uow persistence.UnitOfWork,
	quotaTracker *quota.Tracker,
	ledgerService *ledger.Service,
	rewards Rewards,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Recorder {
	return &Recorder{
		uow:          uow,
		quota:        quotaTracker,
		ledger:       ledgerService,
		rewards:      rewards,
		timeProvider: timeProvider,
		logger:       logger,
		retryPolicy:  retry.DefaultPolicy(),
	}
}

// Engage records one engagement and credits the fixed reward for its type
func (r *Recorder) Engage(ctx context.Context, userID, postID uuid.UUID, engagementType entity.EngagementType) (*Result, error) {
	if !entity.IsValidEngagementType(engagementType) {
		return nil, errs.ErrInvalidEngagementType
	}

	post, err := r.uow.GetContentRepository(ctx).GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Kind != entity.KindPost {
		return nil, errs.ErrContentNotFound
	}
	if post.OwnerID == userID {
		return nil, errs.ErrSelfEngagement
	}

	// Likes and comments consume daily quota; shares are unlimited
	if engagementType.CountsTowardQuota() {
		if err := r.quota.CheckAndIncrementToday(ctx, userID, engagementType.QuotaAction()); err != nil {
			return nil, err
		}
	}

	var result *Result
	err = retry.Do(ctx, r.retryPolicy, r.logger, func() error {
		var opErr error
		result, opErr = r.recordAndCredit(ctx, userID, postID, engagementType)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Engagement credited", map[string]any{
		"user_id":  userID.String(),
		"post_id":  postID.String(),
		"type":     string(engagementType),
		"credited": result.Credited,
	})
	return result, nil
}

// recordAndCredit inserts the engagement record and applies the credit in one
// store transaction; a uniqueness violation rolls back and surfaces as
// DuplicateEngagement with no credit.
func (r *Recorder) recordAndCredit(ctx context.Context, userID, postID uuid.UUID, engagementType entity.EngagementType) (*Result, error) {
	record, err := entity.NewEngagementRecord(postID, userID, engagementType, r.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.uow.GetEngagementRepository(txCtx).Create(txCtx, record); err != nil {
		r.rollback(txCtx)
		return nil, err
	}

	amount := r.rewards.AmountFor(engagementType)
	if amount > 0 {
		if _, err := r.ledger.CreditInScope(txCtx, userID, entity.BalanceZuka,
			amount, entity.TypeSocialReward, postID.String()); err != nil {
			r.rollback(txCtx)
			return nil, err
		}
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return &Result{Record: record, Credited: amount}, nil
}

func (r *Recorder) rollback(txCtx context.Context) {
	if err := r.uow.Rollback(txCtx); err != nil {
		r.logger.Error("Rollback failed", map[string]any{"error": err.Error()})
	}
}
