package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Balance:      entity.BalanceKind(m.Balance),
		Amount:       m.Amount,
		BalanceAfter: m.BalanceAfter,
		Type:         entity.TransactionType(m.Type),
		Reference:    m.Reference,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *TransactionRepository) mapError(operation string, err error, userID uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID.String(),
		"error":   err.Error(),
	})

	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsTransientError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Append saves a new ledger entry. Entries are never updated or deleted.
func (r *TransactionRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.Transaction{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		Balance:      string(transaction.Balance),
		Amount:       transaction.Amount,
		BalanceAfter: transaction.BalanceAfter,
		Type:         string(transaction.Type),
		Reference:    transaction.Reference,
		CreatedAt:    transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		return r.mapError("appending ledger entry", result.Error, transaction.UserID)
	}

	r.logger.Debug("Ledger entry appended", map[string]any{
		"transaction_id": transaction.ID.String(),
		"user_id":        transaction.UserID.String(),
		"balance":        string(transaction.Balance),
		"amount":         transaction.Amount,
		"balance_after":  transaction.BalanceAfter,
		"type":           string(transaction.Type),
	})
	return nil
}

// ListByUser returns the most recent ledger entries for an account, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, r.mapError("listing ledger entries", result.Error, userID)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}
