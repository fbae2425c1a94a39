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

func TestNewContentItem(t *testing.T) {
	tp := fixedTimeProvider(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	t.Run("should start pending and inactive", func(t *testing.T) {
		item, err := entity.NewContentItem(uuid.New(), entity.KindPost, "hello", tp)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, item.ApprovalStatus)
		assert.False(t, item.RewardIssued)
		assert.False(t, item.Active)
		assert.False(t, item.IsTerminal())
	})

	t.Run("should reject nil owner", func(t *testing.T) {
		_, err := entity.NewContentItem(uuid.Nil, entity.KindPost, "x", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := entity.NewContentItem(uuid.New(), entity.ContentKind("story"), "x", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidContentKind)
	})
}

func TestContentItem_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.ApprovalStatus
		to      entity.ApprovalStatus
		allowed bool
	}{
		{"pending to approved", entity.StatusPending, entity.StatusApproved, true},
		{"pending to rejected", entity.StatusPending, entity.StatusRejected, true},
		{"approved to rejected", entity.StatusApproved, entity.StatusRejected, false},
		{"approved to pending", entity.StatusApproved, entity.StatusPending, false},
		{"rejected to approved", entity.StatusRejected, entity.StatusApproved, false},
		{"rejected to pending", entity.StatusRejected, entity.StatusPending, false},
		{"pending to pending", entity.StatusPending, entity.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &entity.ContentItem{ApprovalStatus: tt.from}
			assert.Equal(t, tt.allowed, item.CanTransition(tt.to))
		})
	}
}

func TestContentItem_EffectiveDailyCap(t *testing.T) {
	t.Run("per-ad override wins", func(t *testing.T) {
		item := &entity.ContentItem{DailyCap: 12}
		assert.Equal(t, 12, item.EffectiveDailyCap(5))
	})

	t.Run("zero override falls back to global", func(t *testing.T) {
		item := &entity.ContentItem{DailyCap: 0}
		assert.Equal(t, 5, item.EffectiveDailyCap(5))
	})
}

func TestContentItem_MarkRewardIssued(t *testing.T) {
	item := &entity.ContentItem{}
	assert.False(t, item.RewardIssued)
	item.MarkRewardIssued()
	assert.True(t, item.RewardIssued)
}
