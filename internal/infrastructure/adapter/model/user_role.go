package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the database model for role grants
type UserRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role,priority:1"`
	Role      string    `gorm:"not null;size:20;uniqueIndex:idx_user_role,priority:2"`
	CreatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}
