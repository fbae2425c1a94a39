package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyLimit represents the database model for per-user daily action counters.
// One row per user per UTC day, created lazily on the first action of the day.
type DailyLimit struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LimitDate     string    `gorm:"primaryKey;size:10"` // YYYY-MM-DD (UTC)
	PostsCreated  int       `gorm:"not null;default:0"`
	LikesGiven    int       `gorm:"not null;default:0"`
	CommentsGiven int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for DailyLimit
func (DailyLimit) TableName() string {
	return "daily_limits"
}
