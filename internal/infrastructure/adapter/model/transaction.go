package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents the database model for append-only ledger entries
type Transaction struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Balance      string    `gorm:"not null;size:20"`
	Amount       int64     `gorm:"not null"`
	BalanceAfter int64     `gorm:"not null"`
	Type         string    `gorm:"not null;size:50"`
	Reference    string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
