package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
)

// ContentRepository implements persistence.ContentRepository using GORM
type ContentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewContentRepository creates a new ContentRepository instance
func NewContentRepository(db *gorm.DB, logger coreport.Logger) *ContentRepository {
	return &ContentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ContentRepository) modelToEntity(m *model.ContentItem) *entity.ContentItem {
	return &entity.ContentItem{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		Kind:           entity.ContentKind(m.Kind),
		Body:           m.Body,
		MediaURL:       m.MediaURL,
		ApprovalStatus: entity.ApprovalStatus(m.ApprovalStatus),
		RewardIssued:   m.RewardIssued,
		Active:         m.Active,
		BudgetCents:    m.BudgetCents,
		SpentCents:     m.SpentCents,
		DailyCap:       m.DailyCap,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *ContentRepository) entityToModel(item *entity.ContentItem) model.ContentItem {
	return model.ContentItem{
		ID:             item.ID,
		OwnerID:        item.OwnerID,
		Kind:           string(item.Kind),
		Body:           item.Body,
		MediaURL:       item.MediaURL,
		ApprovalStatus: string(item.ApprovalStatus),
		RewardIssued:   item.RewardIssued,
		Active:         item.Active,
		BudgetCents:    item.BudgetCents,
		SpentCents:     item.SpentCents,
		DailyCap:       item.DailyCap,
		CreatedAt:      item.CreatedAt,
	}
}

func (r *ContentRepository) mapError(operation string, err error, id uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"content_id": id.String(),
		"error":      err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrContentNotFound
	}
	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsTransientError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a new content item
func (r *ContentRepository) Create(ctx context.Context, item *entity.ContentItem) error {
	contentModel := r.entityToModel(item)

	result := r.db.WithContext(ctx).Create(&contentModel)
	if result.Error != nil {
		return r.mapError("creating content", result.Error, item.ID)
	}

	r.logger.Info("Content created", map[string]any{
		"content_id": item.ID.String(),
		"owner_id":   item.OwnerID.String(),
		"kind":       string(item.Kind),
	})
	return nil
}

// GetByID retrieves a content item
func (r *ContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	var contentModel model.ContentItem
	result := r.db.WithContext(ctx).First(&contentModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.mapError("getting content", result.Error, id)
	}
	return r.modelToEntity(&contentModel), nil
}

// GetForUpdate retrieves a content item holding an exclusive row lock for the
// remainder of the surrounding store transaction
func (r *ContentRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	var contentModel model.ContentItem
	result := withRowLock(r.db.WithContext(ctx)).
		First(&contentModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.mapError("locking content", result.Error, id)
	}
	return r.modelToEntity(&contentModel), nil
}

// Update persists approval status, reward issuance and ad activation changes
func (r *ContentRepository) Update(ctx context.Context, item *entity.ContentItem) error {
	result := r.db.WithContext(ctx).Model(&model.ContentItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"approval_status": string(item.ApprovalStatus),
			"reward_issued":   item.RewardIssued,
			"active":          item.Active,
			"spent_cents":     item.SpentCents,
			"daily_cap":       item.DailyCap,
		})

	if result.Error != nil {
		return r.mapError("updating content", result.Error, item.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrContentNotFound
	}
	return nil
}
