package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
)

// BalanceKind identifies which of an account's balances a transaction moves
type BalanceKind string

// Balance kinds
const (
	BalanceWallet BalanceKind = "wallet"
	BalanceZuka   BalanceKind = "zuka"
)

// TransactionType categorizes the source of a balance movement
type TransactionType string

// Transaction types
const (
	TypeMiningReward     TransactionType = "mining_reward"
	TypeSocialReward     TransactionType = "social_reward"
	TypeEventReward      TransactionType = "event_reward"
	TypeAdReward         TransactionType = "ad_reward"
	TypeInvestmentProfit TransactionType = "investment_profit"
	TypePurchase         TransactionType = "purchase"
	TypeAdminAdjustment  TransactionType = "admin_adjustment"
)

// Transaction is one append-only ledger entry. BalanceAfter must equal the
// account's balance of the same kind immediately after Amount was applied,
// so the entries for one (account, kind) pair form an unbroken chain.
type Transaction struct {
	ID           uuid.UUID       // Unique identifier for the ledger entry
	UserID       uuid.UUID       // Account this entry belongs to
	Balance      BalanceKind     // Which balance the amount was applied to
	Amount       int64           // Signed delta in cents (wallet) or coins (zuka)
	BalanceAfter int64           // Balance of that kind after applying Amount
	Type         TransactionType // Source category of the movement
	Reference    string          // Optional link to the source entity (post, ad, course...)
	CreatedAt    time.Time       // When the entry was appended
}

// NewTransaction creates a ledger entry with basic validation
func NewTransaction(
	userID uuid.UUID,
	balance BalanceKind,
	amount int64,
	balanceAfter int64,
	txType TransactionType,
	reference string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrInvalidRequest
	}
	if amount == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if !isValidBalanceKind(balance) {
		return nil, fmt.Errorf("%w: unknown balance kind %q", errs.ErrInvalidRequest, balance)
	}
	if !isValidTransactionType(txType) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, txType)
	}
	if balanceAfter < 0 {
		return nil, errs.ErrInsufficientFunds
	}

	return &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		Balance:      balance,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Type:         txType,
		Reference:    reference,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this entry increased the balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if this entry decreased the balance
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// Helper functions

func isValidBalanceKind(kind BalanceKind) bool {
	return kind == BalanceWallet || kind == BalanceZuka
}

func isValidTransactionType(txType TransactionType) bool {
	switch txType {
	case TypeMiningReward, TypeSocialReward, TypeEventReward, TypeAdReward,
		TypeInvestmentProfit, TypePurchase, TypeAdminAdjustment:
		return true
	}
	return false
}
