package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
)

// RoleRepository implements persistence.RoleRepository using GORM
type RoleRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRoleRepository creates a new RoleRepository instance
func NewRoleRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RoleRepository {
	return &RoleRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *RoleRepository) mapError(operation string, err error, userID uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID.String(),
		"error":   err.Error(),
	})
	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsTransientError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// HasRole reports whether the user holds the given role
func (r *RoleRepository) HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserRole{}).
		Where("user_id = ? AND role = ?", userID, string(role)).
		Count(&count)

	if result.Error != nil {
		return false, r.mapError("checking role", result.Error, userID)
	}
	return count > 0, nil
}

// Assign grants a role to a user; granting an already-held role is a no-op
func (r *RoleRepository) Assign(ctx context.Context, userID uuid.UUID, role entity.Role, grantedBy uuid.UUID) error {
	row := model.UserRole{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      string(role),
		CreatedBy: grantedBy,
		CreatedAt: r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return r.mapError("assigning role", result.Error, userID)
	}

	r.logger.Info("Role assigned", map[string]any{
		"user_id":    userID.String(),
		"role":       string(role),
		"granted_by": grantedBy.String(),
	})
	return nil
}

// RemoveAllForUser drops every role grant for a user
func (r *RoleRepository) RemoveAllForUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.UserRole{}, "user_id = ?", userID)
	if result.Error != nil {
		return r.mapError("removing roles", result.Error, userID)
	}
	return nil
}
