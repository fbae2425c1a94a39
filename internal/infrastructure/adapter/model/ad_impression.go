package model

import (
	"time"

	"github.com/google/uuid"
)

// AdDailyImpression represents the database model for per-ad daily impression counters
type AdDailyImpression struct {
	AdID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImpressionDate  string    `gorm:"primaryKey;size:10"` // YYYY-MM-DD (UTC)
	ImpressionCount int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for AdDailyImpression
func (AdDailyImpression) TableName() string {
	return "ad_daily_impressions"
}
