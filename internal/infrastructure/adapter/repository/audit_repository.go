package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
)

// AuditRepository implements persistence.AuditRepository using GORM
type AuditRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAuditRepository creates a new AuditRepository instance
func NewAuditRepository(db *gorm.DB, logger coreport.Logger) *AuditRepository {
	return &AuditRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *AuditRepository) mapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsTransientError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Append saves an audit entry. A failure here must bubble up so the
// surrounding atomic scope rolls back with it.
func (r *AuditRepository) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	details := ""
	if len(entry.Details) > 0 {
		encoded, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("%w: encoding audit details: %s", errs.ErrInternalServer, err.Error())
		}
		details = string(encoded)
	}

	auditModel := model.AuditLog{
		ID:         entry.ID,
		AdminID:    entry.AdminID,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Details:    details,
		CreatedAt:  entry.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&auditModel)
	if result.Error != nil {
		return r.mapError("appending audit entry", result.Error)
	}

	r.logger.Info("Audit entry appended", map[string]any{
		"audit_id":    entry.ID.String(),
		"admin_id":    entry.AdminID.String(),
		"action":      entry.Action,
		"target_type": entry.TargetType,
		"target_id":   entry.TargetID.String(),
	})
	return nil
}

// List returns the most recent audit entries, newest first
func (r *AuditRepository) List(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	var models []model.AuditLog
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, r.mapError("listing audit entries", result.Error)
	}

	entries := make([]*entity.AuditLogEntry, 0, len(models))
	for i := range models {
		m := &models[i]
		var details map[string]any
		if m.Details != "" {
			if err := json.Unmarshal([]byte(m.Details), &details); err != nil {
				r.logger.Warn("Malformed audit details, returning raw", map[string]any{
					"audit_id": m.ID.String(),
				})
				details = map[string]any{"raw": m.Details}
			}
		}
		entries = append(entries, &entity.AuditLogEntry{
			ID:         m.ID,
			AdminID:    m.AdminID,
			Action:     m.Action,
			TargetType: m.TargetType,
			TargetID:   m.TargetID,
			Details:    details,
			CreatedAt:  m.CreatedAt,
		})
	}
	return entries, nil
}
