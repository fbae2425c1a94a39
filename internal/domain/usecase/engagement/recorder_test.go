package engagement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/engagement"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/ledger"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/quota"
	"github.com/zukafarm/reward-engine/mocks/port/core"
	"github.com/zukafarm/reward-engine/mocks/port/persistence"
)

type txCtxKey struct{}

var fixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

var testRewards = engagement.Rewards{Like: 20, Comment: 20, Share: 100}

var testLimits = entity.DailyLimits{Posts: 2, Likes: 10, Comments: 10}

func newTestLogger() *core.MockLogger {
	logger := new(core.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func newTestTimeProvider() *core.MockTimeProvider {
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(fixedTime)
	return tp
}

type fixture struct {
	uow         *persistence.MockUnitOfWork
	accounts    *persistence.MockAccountRepository
	txns        *persistence.MockTransactionRepository
	content     *persistence.MockContentRepository
	engagements *persistence.MockEngagementRepository
	quotaRepo   *persistence.MockQuotaRepository
	recorder    *engagement.Recorder
}

func newFixture() *fixture {
	f := &fixture{
		uow:         new(persistence.MockUnitOfWork),
		accounts:    new(persistence.MockAccountRepository),
		txns:        new(persistence.MockTransactionRepository),
		content:     new(persistence.MockContentRepository),
		engagements: new(persistence.MockEngagementRepository),
		quotaRepo:   new(persistence.MockQuotaRepository),
	}
	logger := newTestLogger()
	tp := newTestTimeProvider()
	ledgerService := ledger.NewService(f.uow, tp, logger)
	quotaTracker := quota.NewTracker(f.quotaRepo, testLimits, tp, logger)
	f.recorder = engagement.NewRecorder(f.uow, quotaTracker, ledgerService, testRewards, tp, logger)
	return f
}

func postOwnedBy(ownerID uuid.UUID) *entity.ContentItem {
	return &entity.ContentItem{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Kind:           entity.KindPost,
		ApprovalStatus: entity.StatusApproved,
		CreatedAt:      fixedTime,
	}
}

func creditedAccount(userID uuid.UUID, zuka int64) *entity.Account {
	account, _ := entity.NewAccount(userID, 0, zuka, newTestTimeProvider())
	return account
}

func TestRecorder_Engage(t *testing.T) {
	userID := uuid.New()
	ownerID := uuid.New()
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txCtxKey{}, true)

	t.Run("should record a like, consume quota and credit the reward", func(t *testing.T) {
		f := newFixture()
		post := postOwnedBy(ownerID)

		f.uow.On("GetContentRepository", ctx).Return(f.content)
		f.content.On("GetByID", ctx, post.ID).Return(post, nil)
		f.quotaRepo.On("Increment", ctx, userID, "2025-06-01", entity.ActionLike, 10).Return(nil)
		f.uow.On("Begin", ctx).Return(txCtx, nil)
		f.uow.On("GetEngagementRepository", txCtx).Return(f.engagements)
		f.uow.On("GetAccountRepository", txCtx).Return(f.accounts)
		f.uow.On("GetTransactionRepository", txCtx).Return(f.txns)
		f.engagements.On("Create", txCtx, mock.MatchedBy(func(record *entity.EngagementRecord) bool {
			return record.PostID == post.ID &&
				record.UserID == userID &&
				record.Type == entity.EngagementLike
		})).Return(nil)
		f.accounts.On("ApplyDeltas", txCtx, userID, int64(0), int64(20)).
			Return(creditedAccount(userID, 20), nil)
		f.txns.On("Append", txCtx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Amount == 20 &&
				txn.Type == entity.TypeSocialReward &&
				txn.Reference == post.ID.String()
		})).Return(nil)
		f.uow.On("Commit", txCtx).Return(nil)

		result, err := f.recorder.Engage(ctx, userID, post.ID, entity.EngagementLike)

		require.NoError(t, err)
		assert.Equal(t, int64(20), result.Credited)
		assert.Equal(t, entity.EngagementLike, result.Record.Type)
		f.uow.AssertExpectations(t)
		f.engagements.AssertExpectations(t)
		f.quotaRepo.AssertExpectations(t)
	})

	t.Run("should refuse engaging with your own post", func(t *testing.T) {
		f := newFixture()
		post := postOwnedBy(userID)

		f.uow.On("GetContentRepository", ctx).Return(f.content)
		f.content.On("GetByID", ctx, post.ID).Return(post, nil)

		_, err := f.recorder.Engage(ctx, userID, post.ID, entity.EngagementLike)

		assert.ErrorIs(t, err, errs.ErrSelfEngagement)
		f.quotaRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should surface a duplicate without crediting", func(t *testing.T) {
		f := newFixture()
		post := postOwnedBy(ownerID)

		f.uow.On("GetContentRepository", ctx).Return(f.content)
		f.content.On("GetByID", ctx, post.ID).Return(post, nil)
		f.quotaRepo.On("Increment", ctx, userID, "2025-06-01", entity.ActionComment, 10).Return(nil)
		f.uow.On("Begin", ctx).Return(txCtx, nil)
		f.uow.On("GetEngagementRepository", txCtx).Return(f.engagements)
		f.engagements.On("Create", txCtx, mock.Anything).Return(errs.ErrDuplicateEngagement)
		f.uow.On("Rollback", txCtx).Return(nil)

		_, err := f.recorder.Engage(ctx, userID, post.ID, entity.EngagementComment)

		assert.ErrorIs(t, err, errs.ErrDuplicateEngagement)
		f.accounts.AssertNotCalled(t, "ApplyDeltas", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should stop at the daily quota before writing anything", func(t *testing.T) {
		f := newFixture()
		post := postOwnedBy(ownerID)

		f.uow.On("GetContentRepository", ctx).Return(f.content)
		f.content.On("GetByID", ctx, post.ID).Return(post, nil)
		f.quotaRepo.On("Increment", ctx, userID, "2025-06-01", entity.ActionLike, 10).
			Return(errs.ErrQuotaExceeded)

		_, err := f.recorder.Engage(ctx, userID, post.ID, entity.EngagementLike)

		assert.ErrorIs(t, err, errs.ErrQuotaExceeded)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should record a share without consuming quota", func(t *testing.T) {
		f := newFixture()
		post := postOwnedBy(ownerID)

		f.uow.On("GetContentRepository", ctx).Return(f.content)
		f.content.On("GetByID", ctx, post.ID).Return(post, nil)
		f.uow.On("Begin", ctx).Return(txCtx, nil)
		f.uow.On("GetEngagementRepository", txCtx).Return(f.engagements)
		f.uow.On("GetAccountRepository", txCtx).Return(f.accounts)
		f.uow.On("GetTransactionRepository", txCtx).Return(f.txns)
		f.engagements.On("Create", txCtx, mock.Anything).Return(nil)
		f.accounts.On("ApplyDeltas", txCtx, userID, int64(0), int64(100)).
			Return(creditedAccount(userID, 100), nil)
		f.txns.On("Append", txCtx, mock.Anything).Return(nil)
		f.uow.On("Commit", txCtx).Return(nil)

		result, err := f.recorder.Engage(ctx, userID, post.ID, entity.EngagementShare)

		require.NoError(t, err)
		assert.Equal(t, int64(100), result.Credited)
		f.quotaRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should refuse engaging with an ad", func(t *testing.T) {
		f := newFixture()
		ad := postOwnedBy(ownerID)
		ad.Kind = entity.KindAd

		f.uow.On("GetContentRepository", ctx).Return(f.content)
		f.content.On("GetByID", ctx, ad.ID).Return(ad, nil)

		_, err := f.recorder.Engage(ctx, userID, ad.ID, entity.EngagementLike)

		assert.ErrorIs(t, err, errs.ErrContentNotFound)
	})

	t.Run("should reject unknown engagement types up front", func(t *testing.T) {
		f := newFixture()

		_, err := f.recorder.Engage(ctx, userID, uuid.New(), entity.EngagementType("repost"))

		assert.ErrorIs(t, err, errs.ErrInvalidEngagementType)
		f.uow.AssertNotCalled(t, "GetContentRepository", mock.Anything)
	})
}
