package content_test

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
	"github.com/zukafarm/reward-engine/internal/domain/usecase/content"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/quota"
	"github.com/zukafarm/reward-engine/mocks/port/core"
	"github.com/zukafarm/reward-engine/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

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

func newService(contentRepo *persistence.MockContentRepository, quotaRepo *persistence.MockQuotaRepository) *content.Service {
	logger := newTestLogger()
	tp := newTestTimeProvider()
	tracker := quota.NewTracker(quotaRepo, testLimits, tp, logger)
	return content.NewService(contentRepo, tracker, tp, logger)
}

func TestService_Create(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("should create a pending post and consume the daily post quota", func(t *testing.T) {
		mockContent := new(persistence.MockContentRepository)
		mockQuota := new(persistence.MockQuotaRepository)

		mockQuota.On("Increment", ctx, ownerID, "2025-06-01", entity.ActionPost, 2).Return(nil)
		mockContent.On("Create", ctx, mock.MatchedBy(func(item *entity.ContentItem) bool {
			return item.OwnerID == ownerID &&
				item.Kind == entity.KindPost &&
				item.ApprovalStatus == entity.StatusPending &&
				!item.RewardIssued
		})).Return(nil)

		service := newService(mockContent, mockQuota)
		item, err := service.Create(ctx, content.CreateRequest{
			OwnerID:  ownerID,
			Kind:     entity.KindPost,
			Body:     "first post",
			MediaURL: "https://cdn.example/img.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, item.ApprovalStatus)
		assert.Equal(t, "https://cdn.example/img.jpg", item.MediaURL)
		mockQuota.AssertExpectations(t)
		mockContent.AssertExpectations(t)
	})

	t.Run("should not persist a post past the daily quota", func(t *testing.T) {
		mockContent := new(persistence.MockContentRepository)
		mockQuota := new(persistence.MockQuotaRepository)

		mockQuota.On("Increment", ctx, ownerID, "2025-06-01", entity.ActionPost, 2).
			Return(errs.ErrQuotaExceeded)

		service := newService(mockContent, mockQuota)
		_, err := service.Create(ctx, content.CreateRequest{OwnerID: ownerID, Kind: entity.KindPost, Body: "third post"})

		assert.ErrorIs(t, err, errs.ErrQuotaExceeded)
		mockContent.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should create an ad bounded by budget instead of quota", func(t *testing.T) {
		mockContent := new(persistence.MockContentRepository)
		mockQuota := new(persistence.MockQuotaRepository)

		mockContent.On("Create", ctx, mock.MatchedBy(func(item *entity.ContentItem) bool {
			return item.Kind == entity.KindAd &&
				item.BudgetCents == 25000 &&
				item.DailyCap == 8 &&
				item.ApprovalStatus == entity.StatusPending &&
				!item.Active
		})).Return(nil)

		service := newService(mockContent, mockQuota)
		item, err := service.Create(ctx, content.CreateRequest{
			OwnerID:     ownerID,
			Kind:        entity.KindAd,
			Body:        "summer sale",
			BudgetCents: 25000,
			DailyCap:    8,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(25000), item.BudgetCents)
		mockQuota.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject an ad without budget", func(t *testing.T) {
		mockContent := new(persistence.MockContentRepository)
		mockQuota := new(persistence.MockQuotaRepository)

		service := newService(mockContent, mockQuota)
		_, err := service.Create(ctx, content.CreateRequest{OwnerID: ownerID, Kind: entity.KindAd, Body: "free ad"})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		mockContent.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject unknown content kinds", func(t *testing.T) {
		mockContent := new(persistence.MockContentRepository)
		mockQuota := new(persistence.MockQuotaRepository)

		service := newService(mockContent, mockQuota)
		_, err := service.Create(ctx, content.CreateRequest{OwnerID: ownerID, Kind: entity.ContentKind("story")})

		assert.ErrorIs(t, err, errs.ErrInvalidContentKind)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockContent := new(persistence.MockContentRepository)
	mockQuota := new(persistence.MockQuotaRepository)
	mockContent.On("GetByID", ctx, id).Return(&entity.ContentItem{ID: id, Kind: entity.KindPost}, nil)

	service := newService(mockContent, mockQuota)
	item, err := service.Get(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, id, item.ID)
}
