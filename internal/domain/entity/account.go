package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
)

// Account holds a user's two balances: real-money wallet credit (stored in
// cents to avoid floating point precision issues) and ZukaCoin. Balances are
// private; they are mutated only through ledger operations.
type Account struct {
	UserID             uuid.UUID // Owning user
	walletBalance      int64     // Wallet credit in cents (never negative)
	zukaBalance        int64     // ZukaCoin units (never negative)
	VerificationStatus string    // Identity verification state (pending/verified/rejected)
	CreatedAt          time.Time // When the account was created
	UpdatedAt          time.Time // When the account was last updated
	TransactionCount   uint64    // Count of ledger transactions applied to this account
}

// NewAccount creates an account with the given starting balances
func NewAccount(userID uuid.UUID, walletBalance, zukaBalance int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrInvalidRequest
	}
	if walletBalance < 0 || zukaBalance < 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &Account{
		UserID:             userID,
		walletBalance:      walletBalance,
		zukaBalance:        zukaBalance,
		VerificationStatus: VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// WalletBalance returns the current wallet balance in cents
func (a *Account) WalletBalance() int64 {
	return a.walletBalance
}

// ZukaBalance returns the current ZukaCoin balance
func (a *Account) ZukaBalance() int64 {
	return a.zukaBalance
}

// BalanceFor returns the balance for the given kind
func (a *Account) BalanceFor(kind BalanceKind) int64 {
	if kind == BalanceZuka {
		return a.zukaBalance
	}
	return a.walletBalance
}

// SetBalances updates both balances directly (for internal use, like repositories)
func (a *Account) SetBalances(walletBalance, zukaBalance int64, timeProvider coreport.TimeProvider) {
	a.walletBalance = walletBalance
	a.zukaBalance = zukaBalance
	a.UpdatedAt = timeProvider.Now()
}

// CanDebit checks whether applying the (negative) deltas keeps both balances non-negative
func (a *Account) CanDebit(walletDelta, zukaDelta int64) bool {
	return a.walletBalance+walletDelta >= 0 && a.zukaBalance+zukaDelta >= 0
}

// ApplyDeltas applies both deltas and bumps the transaction count.
// Returns ErrInsufficientFunds without mutation if either balance would go negative.
func (a *Account) ApplyDeltas(walletDelta, zukaDelta int64, timeProvider coreport.TimeProvider) error {
	if !a.CanDebit(walletDelta, zukaDelta) {
		return errs.ErrInsufficientFunds
	}

	a.walletBalance += walletDelta
	a.zukaBalance += zukaDelta
	a.UpdatedAt = timeProvider.Now()
	a.TransactionCount++
	return nil
}
