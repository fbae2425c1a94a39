package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentItem represents the database model for posts and ads
type ContentItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind           string    `gorm:"not null;size:20;index"`
	Body           string    `gorm:"type:text"`
	MediaURL       string    `gorm:"size:512"`
	ApprovalStatus string    `gorm:"not null;default:pending;size:20;index"`
	RewardIssued   bool      `gorm:"not null;default:false"`
	Active         bool      `gorm:"not null;default:false"`
	BudgetCents    int64     `gorm:"not null;default:0"`
	SpentCents     int64     `gorm:"not null;default:0"`
	DailyCap       int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for ContentItem
func (ContentItem) TableName() string {
	return "content_items"
}
