package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	"github.com/zukafarm/reward-engine/mocks/port/core"
)

func fixedTimeProvider(t time.Time) *core.MockTimeProvider {
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(t)
	return tp
}

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)
	userID := uuid.New()

	t.Run("should create account with starting balances", func(t *testing.T) {
		account, err := entity.NewAccount(userID, 1000, 50, tp)

		require.NoError(t, err)
		assert.Equal(t, userID, account.UserID)
		assert.Equal(t, int64(1000), account.WalletBalance())
		assert.Equal(t, int64(50), account.ZukaBalance())
		assert.Equal(t, entity.VerificationPending, account.VerificationStatus)
		assert.Equal(t, fixedTime, account.CreatedAt)
	})

	t.Run("should reject nil user ID", func(t *testing.T) {
		_, err := entity.NewAccount(uuid.Nil, 0, 0, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should reject negative starting balances", func(t *testing.T) {
		_, err := entity.NewAccount(userID, -1, 0, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = entity.NewAccount(userID, 0, -1, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestAccount_ApplyDeltas(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(fixedTime)

	tests := []struct {
		name           string
		wallet         int64
		zuka           int64
		walletDelta    int64
		zukaDelta      int64
		expectErr      error
		expectedWallet int64
		expectedZuka   int64
	}{
		{
			name:           "credit both balances",
			wallet:         100,
			zuka:           10,
			walletDelta:    50,
			zukaDelta:      20,
			expectedWallet: 150,
			expectedZuka:   30,
		},
		{
			name:           "debit within balance",
			wallet:         100,
			zuka:           10,
			walletDelta:    -100,
			zukaDelta:      -10,
			expectedWallet: 0,
			expectedZuka:   0,
		},
		{
			name:        "wallet overdraft rejected",
			wallet:      100,
			zuka:        10,
			walletDelta: -101,
			expectErr:   errs.ErrInsufficientFunds,
		},
		{
			name:      "zuka overdraft rejected",
			wallet:    100,
			zuka:      10,
			zukaDelta: -11,
			expectErr: errs.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := entity.NewAccount(uuid.New(), tt.wallet, tt.zuka, tp)
			require.NoError(t, err)

			err = account.ApplyDeltas(tt.walletDelta, tt.zukaDelta, tp)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				// No partial mutation
				assert.Equal(t, tt.wallet, account.WalletBalance())
				assert.Equal(t, tt.zuka, account.ZukaBalance())
				assert.Equal(t, uint64(0), account.TransactionCount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedWallet, account.WalletBalance())
			assert.Equal(t, tt.expectedZuka, account.ZukaBalance())
			assert.Equal(t, uint64(1), account.TransactionCount)
		})
	}
}

func TestAccount_BalanceFor(t *testing.T) {
	tp := fixedTimeProvider(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	account, err := entity.NewAccount(uuid.New(), 500, 70, tp)
	require.NoError(t, err)

	assert.Equal(t, int64(500), account.BalanceFor(entity.BalanceWallet))
	assert.Equal(t, int64(70), account.BalanceFor(entity.BalanceZuka))
}
