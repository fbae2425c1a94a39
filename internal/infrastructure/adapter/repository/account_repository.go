package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) (*entity.Account, error) {
	account, err := entity.NewAccount(accountModel.UserID, accountModel.WalletBalance, accountModel.ZukaBalance, r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create account entity", map[string]any{
			"user_id": accountModel.UserID.String(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create account entity: %s", errs.ErrInternalServer, err.Error())
	}

	account.VerificationStatus = accountModel.VerificationStatus
	account.CreatedAt = accountModel.CreatedAt
	account.UpdatedAt = accountModel.UpdatedAt
	account.TransactionCount = accountModel.TransactionCount

	return account, nil
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, userID uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID.String(),
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateAccount
	}

	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsTransientError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// GetByID retrieves an account by its user ID
func (r *AccountRepository) GetByID(ctx context.Context, userID uuid.UUID) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, "user_id = ?", userID)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, userID)
	}

	return r.modelToEntity(&accountModel)
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating new account", map[string]any{
		"user_id":        account.UserID.String(),
		"wallet_balance": account.WalletBalance(),
		"zuka_balance":   account.ZukaBalance(),
	})

	accountModel := model.Account{
		UserID:             account.UserID,
		WalletBalance:      account.WalletBalance(),
		ZukaBalance:        account.ZukaBalance(),
		VerificationStatus: account.VerificationStatus,
		CreatedAt:          account.CreatedAt,
		UpdatedAt:          account.UpdatedAt,
		TransactionCount:   account.TransactionCount,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.UserID)
	}

	r.logger.Info("Account created successfully", map[string]any{
		"user_id": account.UserID.String(),
	})
	return nil
}

// ApplyDeltas atomically applies both balance deltas under a row lock.
// The repository instance handed out by the unit of work is already bound to
// an open transaction, so the FOR UPDATE lock lives until that scope ends.
func (r *AccountRepository) ApplyDeltas(ctx context.Context, userID uuid.UUID, walletDelta, zukaDelta int64) (*entity.Account, error) {
	r.logger.Debug("Applying balance deltas", map[string]any{
		"user_id":      userID.String(),
		"wallet_delta": walletDelta,
		"zuka_delta":   zukaDelta,
	})

	// Lock the account row exclusively for the remainder of the transaction
	var accountModel model.Account
	result := withRowLock(r.db.WithContext(ctx)).
		First(&accountModel, "user_id = ?", userID)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking account", result.Error, userID)
	}

	newWallet := accountModel.WalletBalance + walletDelta
	newZuka := accountModel.ZukaBalance + zukaDelta

	if newWallet < 0 || newZuka < 0 {
		r.logger.Warn("Insufficient balance for debit", map[string]any{
			"user_id":         userID.String(),
			"wallet_balance":  accountModel.WalletBalance,
			"zuka_balance":    accountModel.ZukaBalance,
			"wallet_delta":    walletDelta,
			"zuka_delta":      zukaDelta,
		})
		return nil, errs.ErrInsufficientFunds
	}

	accountModel.WalletBalance = newWallet
	accountModel.ZukaBalance = newZuka
	accountModel.TransactionCount++
	accountModel.UpdatedAt = r.timeProvider.Now()

	result = r.db.WithContext(ctx).Model(&accountModel).Updates(map[string]interface{}{
		"wallet_balance":    accountModel.WalletBalance,
		"zuka_balance":      accountModel.ZukaBalance,
		"transaction_count": accountModel.TransactionCount,
		"updated_at":        accountModel.UpdatedAt,
	})
	if result.Error != nil {
		return nil, r.handleDatabaseError("updating balances", result.Error, userID)
	}

	return r.modelToEntity(&accountModel)
}

// UpdateVerificationStatus sets the verification state and returns the previous value
func (r *AccountRepository) UpdateVerificationStatus(ctx context.Context, userID uuid.UUID, status string) (string, error) {
	var accountModel model.Account
	result := withRowLock(r.db.WithContext(ctx)).
		First(&accountModel, "user_id = ?", userID)

	if result.Error != nil {
		return "", r.handleDatabaseError("locking account", result.Error, userID)
	}

	previous := accountModel.VerificationStatus

	result = r.db.WithContext(ctx).Model(&accountModel).Updates(map[string]interface{}{
		"verification_status": status,
		"updated_at":          r.timeProvider.Now(),
	})
	if result.Error != nil {
		return "", r.handleDatabaseError("updating verification status", result.Error, userID)
	}

	r.logger.Info("Verification status updated", map[string]any{
		"user_id":  userID.String(),
		"previous": previous,
		"status":   status,
	})
	return previous, nil
}

// Delete removes the account row. Ledger entries and audit records are retained.
func (r *AccountRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Account{}, "user_id = ?", userID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting account", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Info("Account deleted", map[string]any{
		"user_id": userID.String(),
	})
	return nil
}
