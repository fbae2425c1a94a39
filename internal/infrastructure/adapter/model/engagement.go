package model

import (
	"time"

	"github.com/google/uuid"
)

// Engagement represents the database model for social engagement records.
// The composite unique index is what makes "already engaged" a store-enforced
// fact rather than an application-level check.
type Engagement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_engagement_once,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_engagement_once,priority:2"`
	Type      string    `gorm:"not null;size:20;uniqueIndex:idx_engagement_once,priority:3"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Engagement
func (Engagement) TableName() string {
	return "social_engagements"
}
