package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	port "github.com/zukafarm/reward-engine/internal/domain/port/persistence"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/ledger"
)

// memLedgerStore is an in-memory single-account store honoring the atomic
// repository contracts: Begin takes the account's row lock, staged mutations
// become visible only on Commit, and Rollback discards them. It stands in for
// the row-locked store transaction the gorm adapters provide.
type memLedgerStore struct {
	mu      sync.Mutex
	userID  uuid.UUID
	wallet  int64
	zuka    int64
	txCount uint64
	entries []*entity.Transaction
}

type ledgerUnitKey struct{}

type ledgerUnit struct {
	wallet  int64
	zuka    int64
	txCount uint64
	entries []*entity.Transaction
}

func newMemLedgerStore(userID uuid.UUID, wallet, zuka int64) *memLedgerStore {
	return &memLedgerStore{userID: userID, wallet: wallet, zuka: zuka}
}

func (s *memLedgerStore) Begin(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	unit := &ledgerUnit{wallet: s.wallet, zuka: s.zuka, txCount: s.txCount}
	return context.WithValue(ctx, ledgerUnitKey{}, unit), nil
}

func (s *memLedgerStore) Commit(ctx context.Context) error {
	unit := ctx.Value(ledgerUnitKey{}).(*ledgerUnit)
	s.wallet, s.zuka, s.txCount = unit.wallet, unit.zuka, unit.txCount
	s.entries = append(s.entries, unit.entries...)
	s.mu.Unlock()
	return nil
}

func (s *memLedgerStore) Rollback(ctx context.Context) error {
	s.mu.Unlock()
	return nil
}

func (s *memLedgerStore) GetAccountRepository(ctx context.Context) port.AccountRepository {
	return &memLedgerAccounts{store: s}
}

func (s *memLedgerStore) GetTransactionRepository(ctx context.Context) port.TransactionRepository {
	return &memLedgerTransactions{store: s}
}

func (s *memLedgerStore) GetContentRepository(ctx context.Context) port.ContentRepository { return nil }

func (s *memLedgerStore) GetEngagementRepository(ctx context.Context) port.EngagementRepository {
	return nil
}

func (s *memLedgerStore) GetAuditRepository(ctx context.Context) port.AuditRepository { return nil }

func (s *memLedgerStore) GetRoleRepository(ctx context.Context) port.RoleRepository { return nil }

type memLedgerAccounts struct {
	store *memLedgerStore
}

func (r *memLedgerAccounts) ApplyDeltas(ctx context.Context, userID uuid.UUID, walletDelta, zukaDelta int64) (*entity.Account, error) {
	unit := ctx.Value(ledgerUnitKey{}).(*ledgerUnit)
	if unit.wallet+walletDelta < 0 || unit.zuka+zukaDelta < 0 {
		return nil, errs.ErrInsufficientFunds
	}

	unit.wallet += walletDelta
	unit.zuka += zukaDelta
	unit.txCount++

	account, err := entity.NewAccount(userID, unit.wallet, unit.zuka, newTestTimeProvider())
	if err != nil {
		return nil, err
	}
	account.TransactionCount = unit.txCount
	return account, nil
}

func (r *memLedgerAccounts) GetByID(ctx context.Context, userID uuid.UUID) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, err := entity.NewAccount(userID, r.store.wallet, r.store.zuka, newTestTimeProvider())
	if err != nil {
		return nil, err
	}
	account.TransactionCount = r.store.txCount
	return account, nil
}

func (r *memLedgerAccounts) Create(ctx context.Context, account *entity.Account) error { return nil }

func (r *memLedgerAccounts) UpdateVerificationStatus(ctx context.Context, userID uuid.UUID, status string) (string, error) {
	return "", errs.ErrAccountNotFound
}

func (r *memLedgerAccounts) Delete(ctx context.Context, userID uuid.UUID) error {
	return errs.ErrAccountNotFound
}

type memLedgerTransactions struct {
	store *memLedgerStore
}

func (r *memLedgerTransactions) Append(ctx context.Context, transaction *entity.Transaction) error {
	unit := ctx.Value(ledgerUnitKey{}).(*ledgerUnit)
	unit.entries = append(unit.entries, transaction)
	return nil
}

func (r *memLedgerTransactions) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Transaction
	for i := len(r.store.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.store.entries[i])
	}
	return out, nil
}

func TestService_ConcurrentCreditsAndDebits(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	t.Run("should end at the sum of applied deltas with an unbroken balance_after chain", func(t *testing.T) {
		store := newMemLedgerStore(userID, 0, 40)
		service := ledger.NewService(store, newTestTimeProvider(), newTestLogger())

		var wg sync.WaitGroup
		results := make(chan error, 30)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := service.Credit(ctx, userID, entity.BalanceZuka, 5, entity.TypeMiningReward, "")
				results <- err
			}()
		}
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := service.Debit(ctx, userID, entity.BalanceZuka, 3, entity.TypePurchase, "")
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		for err := range results {
			require.NoError(t, err)
		}

		// 40 + 20*5 - 10*3
		assert.Equal(t, int64(110), store.zuka)
		require.Len(t, store.entries, 30)

		// Entries are appended in commit order, so replaying them from the
		// starting balance must reproduce every BalanceAfter exactly.
		running := int64(40)
		for _, entry := range store.entries {
			running += entry.Amount
			assert.Equal(t, running, entry.BalanceAfter)
			assert.Equal(t, entity.BalanceZuka, entry.Balance)
			assert.Equal(t, userID, entry.UserID)
		}
	})

	t.Run("should allow exactly the funded debits when overdrawn concurrently", func(t *testing.T) {
		store := newMemLedgerStore(userID, 0, 10)
		service := ledger.NewService(store, newTestTimeProvider(), newTestLogger())

		var wg sync.WaitGroup
		results := make(chan error, 5)
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := service.Debit(ctx, userID, entity.BalanceZuka, 3, entity.TypePurchase, "")
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		succeeded, rejected := 0, 0
		for err := range results {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
			rejected++
		}

		assert.Equal(t, 3, succeeded)
		assert.Equal(t, 2, rejected)
		assert.Equal(t, int64(1), store.zuka)
		assert.Len(t, store.entries, 3)
	})
}
