package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
)

// ContentKind distinguishes user posts from paid advertisements
type ContentKind string

// Content kinds
const (
	KindPost ContentKind = "post"
	KindAd   ContentKind = "ad"
)

// ApprovalStatus is the moderation state of a content item
type ApprovalStatus string

// Approval states. Pending is the initial state; approved and rejected are terminal.
const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// ContentItem is a post or an ad moving through the approval lifecycle.
// RewardIssued flips false->true exactly once, on the pending->approved
// transition of a post.
type ContentItem struct {
	ID             uuid.UUID      // Unique identifier
	OwnerID        uuid.UUID      // Creating user
	Kind           ContentKind    // post or ad
	Body           string         // Caption / text payload
	MediaURL       string         // Optional media reference (storage itself is external)
	ApprovalStatus ApprovalStatus // pending | approved | rejected
	RewardIssued   bool           // Whether the one-time approval reward was issued
	Active         bool           // Ads only: approved and open for impression tracking
	BudgetCents    int64          // Ads only: advertiser budget
	SpentCents     int64          // Ads only: budget consumed so far
	DailyCap       int            // Ads only: per-ad impression cap override (0 = global default)
	CreatedAt      time.Time      // When the item was created
}

// NewContentItem creates a content item in the pending state
func NewContentItem(ownerID uuid.UUID, kind ContentKind, body string, timeProvider coreport.TimeProvider) (*ContentItem, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrInvalidRequest
	}
	if !isValidContentKind(kind) {
		return nil, errs.ErrInvalidContentKind
	}

	return &ContentItem{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Kind:           kind,
		Body:           body,
		ApprovalStatus: StatusPending,
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// IsTerminal reports whether the item has left the pending state
func (c *ContentItem) IsTerminal() bool {
	return c.ApprovalStatus == StatusApproved || c.ApprovalStatus == StatusRejected
}

// CanTransition reports whether moving to target is a legal state change.
// Only pending->approved and pending->rejected are legal.
func (c *ContentItem) CanTransition(target ApprovalStatus) bool {
	if c.ApprovalStatus != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusRejected
}

// MarkRewardIssued records the one-time reward issuance
func (c *ContentItem) MarkRewardIssued() {
	c.RewardIssued = true
}

// EffectiveDailyCap resolves the per-ad impression cap against the global default
func (c *ContentItem) EffectiveDailyCap(globalCap int) int {
	if c.DailyCap > 0 {
		return c.DailyCap
	}
	return globalCap
}

// IsValidApprovalStatus validates a target status name from the API boundary
func IsValidApprovalStatus(status ApprovalStatus) bool {
	return status == StatusPending || status == StatusApproved || status == StatusRejected
}

func isValidContentKind(kind ContentKind) bool {
	return kind == KindPost || kind == KindAd
}
