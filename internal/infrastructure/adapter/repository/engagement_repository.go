package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
)

// EngagementRepository implements persistence.EngagementRepository using GORM
type EngagementRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEngagementRepository creates a new EngagementRepository instance
func NewEngagementRepository(db *gorm.DB, logger coreport.Logger) *EngagementRepository {
	return &EngagementRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create inserts an engagement record. Uniqueness of (post, user, type) is
// enforced by the store's unique index; with two concurrent inserts exactly
// one wins and the loser gets ErrDuplicateEngagement.
func (r *EngagementRepository) Create(ctx context.Context, record *entity.EngagementRecord) error {
	engagementModel := model.Engagement{
		ID:        record.ID,
		PostID:    record.PostID,
		UserID:    record.UserID,
		Type:      string(record.Type),
		CreatedAt: record.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&engagementModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Debug("Engagement already recorded", map[string]any{
				"post_id": record.PostID.String(),
				"user_id": record.UserID.String(),
				"type":    string(record.Type),
			})
			return errs.ErrDuplicateEngagement
		}
		r.logger.Error("Database error when recording engagement", map[string]any{
			"post_id": record.PostID.String(),
			"user_id": record.UserID.String(),
			"error":   result.Error.Error(),
		})
		if r.errorClassifier.IsLockError(result.Error) || r.errorClassifier.IsTransientError(result.Error) {
			return fmt.Errorf("%w: %s", errs.ErrTransient, result.Error.Error())
		}
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	return nil
}

// Exists reports whether the (post, user, type) triple is already recorded
func (r *EngagementRepository) Exists(ctx context.Context, postID, userID uuid.UUID, engagementType entity.EngagementType) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Engagement{}).
		Where("post_id = ? AND user_id = ? AND type = ?", postID, userID, string(engagementType)).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Database error when checking engagement", map[string]any{
			"post_id": postID.String(),
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		if r.errorClassifier.IsTransientError(result.Error) {
			return false, fmt.Errorf("%w: %s", errs.ErrTransient, result.Error.Error())
		}
		return false, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	return count > 0, nil
}
