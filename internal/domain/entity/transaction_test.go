package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)
	userID := uuid.New()

	t.Run("should create credit entry", func(t *testing.T) {
		txn, err := entity.NewTransaction(userID, entity.BalanceZuka, 20, 120, entity.TypeSocialReward, "post-ref", tp)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, txn.ID)
		assert.Equal(t, userID, txn.UserID)
		assert.Equal(t, entity.BalanceZuka, txn.Balance)
		assert.Equal(t, int64(20), txn.Amount)
		assert.Equal(t, int64(120), txn.BalanceAfter)
		assert.True(t, txn.IsCredit())
		assert.False(t, txn.IsDebit())
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("should create debit entry", func(t *testing.T) {
		txn, err := entity.NewTransaction(userID, entity.BalanceWallet, -500, 0, entity.TypePurchase, "", tp)

		require.NoError(t, err)
		assert.True(t, txn.IsDebit())
		assert.False(t, txn.IsCredit())
	})

	tests := []struct {
		name         string
		userID       uuid.UUID
		balance      entity.BalanceKind
		amount       int64
		balanceAfter int64
		txType       entity.TransactionType
		expectErr    error
	}{
		{
			name:      "nil user rejected",
			userID:    uuid.Nil,
			balance:   entity.BalanceZuka,
			amount:    10,
			txType:    entity.TypeSocialReward,
			expectErr: errs.ErrInvalidRequest,
		},
		{
			name:      "zero amount rejected",
			userID:    userID,
			balance:   entity.BalanceZuka,
			amount:    0,
			txType:    entity.TypeSocialReward,
			expectErr: errs.ErrInvalidAmount,
		},
		{
			name:      "unknown balance kind rejected",
			userID:    userID,
			balance:   entity.BalanceKind("gold"),
			amount:    10,
			txType:    entity.TypeSocialReward,
			expectErr: errs.ErrInvalidRequest,
		},
		{
			name:      "unknown transaction type rejected",
			userID:    userID,
			balance:   entity.BalanceZuka,
			amount:    10,
			txType:    entity.TransactionType("lottery"),
			expectErr: errs.ErrInvalidRequest,
		},
		{
			name:         "negative balance after rejected",
			userID:       userID,
			balance:      entity.BalanceZuka,
			amount:       -10,
			balanceAfter: -5,
			txType:       entity.TypePurchase,
			expectErr:    errs.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entity.NewTransaction(tt.userID, tt.balance, tt.amount, tt.balanceAfter, tt.txType, "", tp)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}
