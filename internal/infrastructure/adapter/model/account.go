package model

import (
	"time"

	"github.com/google/uuid"
)

// Account represents the database model for user accounts
type Account struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	WalletBalance      int64     `gorm:"not null;check:wallet_balance >= 0"` // Cents
	ZukaBalance        int64     `gorm:"not null;check:zuka_balance >= 0"`
	VerificationStatus string    `gorm:"not null;default:pending;size:50"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
	TransactionCount   uint64    `gorm:"default:0"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
