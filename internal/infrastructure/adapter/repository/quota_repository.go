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

// QuotaRepository implements persistence.QuotaRepository using GORM
type QuotaRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewQuotaRepository creates a new QuotaRepository instance
func NewQuotaRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *QuotaRepository {
	return &QuotaRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// counterColumn maps an action to its counter column
func counterColumn(action entity.ActionType) (string, error) {
	switch action {
	case entity.ActionPost:
		return "posts_created", nil
	case entity.ActionLike:
		return "likes_given", nil
	case entity.ActionComment:
		return "comments_given", nil
	default:
		return "", fmt.Errorf("%w: unknown action type %q", errs.ErrInvalidActionType, action)
	}
}

func (r *QuotaRepository) mapError(operation string, err error, userID uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID.String(),
		"error":   err.Error(),
	})
	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsTransientError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Increment atomically bumps the counter for (user, date, action) if below
// limit. The day's row is created on first use with an insert that tolerates
// a concurrent creator, then the compare and increment run as one guarded
// UPDATE, so with N concurrent calls and limit L exactly L succeed.
func (r *QuotaRepository) Increment(ctx context.Context, userID uuid.UUID, date string, action entity.ActionType, limit int) error {
	column, err := counterColumn(action)
	if err != nil {
		return err
	}

	now := r.timeProvider.Now()
	row := model.DailyLimit{
		UserID:    userID,
		LimitDate: date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return r.mapError("ensuring daily limit row", result.Error, userID)
	}

	result = r.db.WithContext(ctx).Model(&model.DailyLimit{}).
		Where("user_id = ? AND limit_date = ? AND "+column+" < ?", userID, date, limit).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column+" + 1"),
			"updated_at": now,
		})
	if result.Error != nil {
		return r.mapError("incrementing daily counter", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Daily quota exhausted", map[string]any{
			"user_id": userID.String(),
			"date":    date,
			"action":  string(action),
			"limit":   limit,
		})
		return errs.ErrQuotaExceeded
	}

	return nil
}

// Get returns the day's counter, or a zero-valued counter if the user has
// taken no rate-limited action that day
func (r *QuotaRepository) Get(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLimitCounter, error) {
	var row model.DailyLimit
	result := r.db.WithContext(ctx).First(&row, "user_id = ? AND limit_date = ?", userID, date)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &entity.DailyLimitCounter{UserID: userID, LimitDate: date}, nil
		}
		return nil, r.mapError("getting daily counter", result.Error, userID)
	}

	return &entity.DailyLimitCounter{
		UserID:        row.UserID,
		LimitDate:     row.LimitDate,
		PostsCreated:  row.PostsCreated,
		LikesGiven:    row.LikesGiven,
		CommentsGiven: row.CommentsGiven,
	}, nil
}
