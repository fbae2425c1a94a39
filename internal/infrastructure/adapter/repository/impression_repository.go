package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
)

// ImpressionRepository implements persistence.ImpressionRepository using GORM
type ImpressionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewImpressionRepository creates a new ImpressionRepository instance
func NewImpressionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ImpressionRepository {
	return &ImpressionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ImpressionRepository) mapError(operation string, err error, adID uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"ad_id": adID.String(),
		"error": err.Error(),
	})
	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsTransientError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Increment atomically bumps the (ad, date) counter if it is below cap.
// Same guarded-update contract as the daily quota counters.
func (r *ImpressionRepository) Increment(ctx context.Context, adID uuid.UUID, date string, dailyCap int) error {
	now := r.timeProvider.Now()
	row := model.AdDailyImpression{
		AdID:           adID,
		ImpressionDate: date,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return r.mapError("ensuring impression row", result.Error, adID)
	}

	result = r.db.WithContext(ctx).Model(&model.AdDailyImpression{}).
		Where("ad_id = ? AND impression_date = ? AND impression_count < ?", adID, date, dailyCap).
		Updates(map[string]interface{}{
			"impression_count": gorm.Expr("impression_count + 1"),
			"updated_at":       now,
		})
	if result.Error != nil {
		return r.mapError("incrementing impression counter", result.Error, adID)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Ad impression cap reached", map[string]any{
			"ad_id": adID.String(),
			"date":  date,
			"cap":   dailyCap,
		})
		return errs.ErrImpressionCapped
	}

	return nil
}

// Get returns the day's impression counter, or a zero-valued counter if the
// ad has not been shown that day
func (r *ImpressionRepository) Get(ctx context.Context, adID uuid.UUID, date string) (*entity.AdImpressionCounter, error) {
	var row model.AdDailyImpression
	result := r.db.WithContext(ctx).First(&row, "ad_id = ? AND impression_date = ?", adID, date)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &entity.AdImpressionCounter{AdID: adID, ImpressionDate: date}, nil
		}
		return nil, r.mapError("getting impression counter", result.Error, adID)
	}

	return &entity.AdImpressionCounter{
		AdID:            row.AdID,
		ImpressionDate:  row.ImpressionDate,
		ImpressionCount: row.ImpressionCount,
	}, nil
}
