package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents the database model for the append-only admin audit trail
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AdminID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Action     string    `gorm:"not null;size:100"`
	TargetType string    `gorm:"not null;size:50"`
	TargetID   uuid.UUID `gorm:"type:uuid"`
	Details    string    `gorm:"type:text"` // JSON-encoded structured context
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "admin_audit_log"
}
