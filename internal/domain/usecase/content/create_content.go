package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/domain/port/persistence"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/quota"
)

// CreateRequest is the input for creating a post or an ad
type CreateRequest struct {
	OwnerID     uuid.UUID
	Kind        entity.ContentKind
	Body        string
	MediaURL    string
	BudgetCents int64 // Ads only
	DailyCap    int   // Ads only: per-ad impression cap override (0 = global default)
}

// Service creates content items. Posts consume the daily post quota; ads are
// limited by budget instead. Everything starts pending.
type Service struct {
	content      persistence.ContentRepository
	quota        *quota.Tracker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a content service
func NewService(content persistence.ContentRepository, quotaTracker *quota.Tracker, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		content:      content,
		quota:        quotaTracker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create persists a new content item in the pending state and returns it
func (s *Service) Create(ctx context.Context, req CreateRequest) (*entity.ContentItem, error) {
	item, err := entity.NewContentItem(req.OwnerID, req.Kind, req.Body, s.timeProvider)
	if err != nil {
		return nil, err
	}
	item.MediaURL = req.MediaURL

	switch req.Kind {
	case entity.KindPost:
		if err := s.quota.CheckAndIncrementToday(ctx, req.OwnerID, entity.ActionPost); err != nil {
			return nil, err
		}
	case entity.KindAd:
		if req.BudgetCents <= 0 {
			return nil, errs.ErrInvalidAmount
		}
		item.BudgetCents = req.BudgetCents
		item.DailyCap = req.DailyCap
	}

	if err := s.content.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Content created", map[string]any{
		"content_id": item.ID.String(),
		"owner_id":   item.OwnerID.String(),
		"kind":       string(item.Kind),
	})
	return item, nil
}

// Get retrieves a content item by id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	return s.content.GetByID(ctx, id)
}
