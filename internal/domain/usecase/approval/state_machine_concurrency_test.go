package approval_test

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
	"github.com/zukafarm/reward-engine/internal/domain/usecase/approval"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/authz"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/ledger"
)

// memApprovalStore is an in-memory store for one content item and its owner's
// account, honoring the atomic contracts: Begin takes the row lock
// GetForUpdate relies on, and the status change, reward flag, credit and
// audit entry publish together on Commit.
type memApprovalStore struct {
	mu      sync.Mutex
	item    entity.ContentItem
	zuka    int64
	txCount uint64
	entries []*entity.Transaction
	audits  []*entity.AuditLogEntry
}

type approvalUnitKey struct{}

type approvalUnit struct {
	item    *entity.ContentItem
	updated bool
	zuka    int64
	txCount uint64
	entries []*entity.Transaction
	audits  []*entity.AuditLogEntry
}

func newMemApprovalStore(item *entity.ContentItem, ownerZuka int64) *memApprovalStore {
	return &memApprovalStore{item: *item, zuka: ownerZuka}
}

func (s *memApprovalStore) Begin(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	unit := &approvalUnit{zuka: s.zuka, txCount: s.txCount}
	return context.WithValue(ctx, approvalUnitKey{}, unit), nil
}

func (s *memApprovalStore) Commit(ctx context.Context) error {
	unit := ctx.Value(approvalUnitKey{}).(*approvalUnit)
	if unit.updated {
		s.item = *unit.item
	}
	s.zuka, s.txCount = unit.zuka, unit.txCount
	s.entries = append(s.entries, unit.entries...)
	s.audits = append(s.audits, unit.audits...)
	s.mu.Unlock()
	return nil
}

func (s *memApprovalStore) Rollback(ctx context.Context) error {
	s.mu.Unlock()
	return nil
}

func (s *memApprovalStore) GetAccountRepository(ctx context.Context) port.AccountRepository {
	return &memApprovalAccounts{store: s}
}

func (s *memApprovalStore) GetTransactionRepository(ctx context.Context) port.TransactionRepository {
	return &memApprovalTransactions{store: s}
}

func (s *memApprovalStore) GetContentRepository(ctx context.Context) port.ContentRepository {
	return &memApprovalContent{store: s}
}

func (s *memApprovalStore) GetEngagementRepository(ctx context.Context) port.EngagementRepository {
	return nil
}

func (s *memApprovalStore) GetAuditRepository(ctx context.Context) port.AuditRepository {
	return &memApprovalAudit{store: s}
}

func (s *memApprovalStore) GetRoleRepository(ctx context.Context) port.RoleRepository { return nil }

type memApprovalContent struct {
	store *memApprovalStore
}

func (r *memApprovalContent) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	if r.store.item.ID != id {
		return nil, errs.ErrContentNotFound
	}
	// The lock is already held by Begin; hand out a copy of committed state
	copied := r.store.item
	return &copied, nil
}

func (r *memApprovalContent) Update(ctx context.Context, item *entity.ContentItem) error {
	unit := ctx.Value(approvalUnitKey{}).(*approvalUnit)
	copied := *item
	unit.item = &copied
	unit.updated = true
	return nil
}

func (r *memApprovalContent) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.item.ID != id {
		return nil, errs.ErrContentNotFound
	}
	copied := r.store.item
	return &copied, nil
}

func (r *memApprovalContent) Create(ctx context.Context, item *entity.ContentItem) error {
	return nil
}

type memApprovalAccounts struct {
	store *memApprovalStore
}

func (r *memApprovalAccounts) ApplyDeltas(ctx context.Context, userID uuid.UUID, walletDelta, zukaDelta int64) (*entity.Account, error) {
	unit := ctx.Value(approvalUnitKey{}).(*approvalUnit)
	if unit.zuka+zukaDelta < 0 {
		return nil, errs.ErrInsufficientFunds
	}

	unit.zuka += zukaDelta
	unit.txCount++

	account, err := entity.NewAccount(userID, 0, unit.zuka, newTestTimeProvider())
	if err != nil {
		return nil, err
	}
	account.TransactionCount = unit.txCount
	return account, nil
}

func (r *memApprovalAccounts) GetByID(ctx context.Context, userID uuid.UUID) (*entity.Account, error) {
	return nil, errs.ErrAccountNotFound
}

func (r *memApprovalAccounts) Create(ctx context.Context, account *entity.Account) error {
	return nil
}

func (r *memApprovalAccounts) UpdateVerificationStatus(ctx context.Context, userID uuid.UUID, status string) (string, error) {
	return "", errs.ErrAccountNotFound
}

func (r *memApprovalAccounts) Delete(ctx context.Context, userID uuid.UUID) error {
	return errs.ErrAccountNotFound
}

type memApprovalTransactions struct {
	store *memApprovalStore
}

func (r *memApprovalTransactions) Append(ctx context.Context, transaction *entity.Transaction) error {
	unit := ctx.Value(approvalUnitKey{}).(*approvalUnit)
	unit.entries = append(unit.entries, transaction)
	return nil
}

func (r *memApprovalTransactions) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	return nil, nil
}

type memApprovalAudit struct {
	store *memApprovalStore
}

func (r *memApprovalAudit) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	unit := ctx.Value(approvalUnitKey{}).(*approvalUnit)
	unit.audits = append(unit.audits, entry)
	return nil
}

func (r *memApprovalAudit) List(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]*entity.AuditLogEntry(nil), r.store.audits...), nil
}

// moderatorRoles grants every caller the moderator role; role storage itself
// is covered by the authz tests.
type moderatorRoles struct{}

func (moderatorRoles) HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error) {
	return role == entity.RoleModerator, nil
}

func (moderatorRoles) Assign(ctx context.Context, userID uuid.UUID, role entity.Role, grantedBy uuid.UUID) error {
	return nil
}

func (moderatorRoles) RemoveAllForUser(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func TestStateMachine_ConcurrentApprovals(t *testing.T) {
	adminID := uuid.New()
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("should issue the approval reward exactly once across concurrent approvals", func(t *testing.T) {
		item := pendingPost(ownerID)
		store := newMemApprovalStore(item, 0)
		ledgerService := ledger.NewService(store, newTestTimeProvider(), newTestLogger())
		gate := authz.NewGate(moderatorRoles{}, newTestLogger())
		machine := approval.NewStateMachine(store, ledgerService, gate, testRewards,
			newTestTimeProvider(), newTestLogger())

		const callers = 6
		var wg sync.WaitGroup
		type outcome struct {
			item *entity.ContentItem
			err  error
		}
		results := make(chan outcome, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				approved, err := machine.Transition(ctx, adminID, item.ID, entity.StatusApproved)
				results <- outcome{item: approved, err: err}
			}()
		}
		wg.Wait()
		close(results)

		// Re-approving is an idempotent no-op, so every caller sees success
		// and the approved state
		for result := range results {
			require.NoError(t, result.err)
			assert.Equal(t, entity.StatusApproved, result.item.ApprovalStatus)
		}

		assert.Equal(t, testRewards.PostApproval, store.zuka)
		require.Len(t, store.entries, 1)
		assert.Equal(t, ownerID, store.entries[0].UserID)
		assert.Equal(t, item.ID.String(), store.entries[0].Reference)
		assert.Len(t, store.audits, 1)
		assert.Equal(t, entity.StatusApproved, store.item.ApprovalStatus)
		assert.True(t, store.item.RewardIssued)
	})

	t.Run("should let one of two opposing transitions win and fail the other cleanly", func(t *testing.T) {
		item := pendingPost(ownerID)
		store := newMemApprovalStore(item, 0)
		ledgerService := ledger.NewService(store, newTestTimeProvider(), newTestLogger())
		gate := authz.NewGate(moderatorRoles{}, newTestLogger())
		machine := approval.NewStateMachine(store, ledgerService, gate, testRewards,
			newTestTimeProvider(), newTestLogger())

		var wg sync.WaitGroup
		results := make(chan error, 2)
		for _, target := range []entity.ApprovalStatus{entity.StatusApproved, entity.StatusRejected} {
			wg.Add(1)
			go func(target entity.ApprovalStatus) {
				defer wg.Done()
				_, err := machine.Transition(ctx, adminID, item.ID, target)
				results <- err
			}(target)
		}
		wg.Wait()
		close(results)

		succeeded, conflicted := 0, 0
		for err := range results {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			conflicted++
		}

		// Whichever transition commits first wins; the loser finds a terminal
		// item and fails without side effects
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, conflicted)
		assert.True(t, store.item.IsTerminal())
		assert.LessOrEqual(t, len(store.entries), 1)
		assert.Len(t, store.audits, 1)
	})
}
