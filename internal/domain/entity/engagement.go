package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
)

// EngagementType is the kind of social action taken on a post
type EngagementType string

// Engagement types
const (
	EngagementLike    EngagementType = "like"
	EngagementComment EngagementType = "comment"
	EngagementShare   EngagementType = "share"
)

// EngagementRecord is one user's like/comment/share on one post. The store
// enforces uniqueness of (PostID, UserID, Type); the existence of a row is
// the sole truth of "already engaged".
type EngagementRecord struct {
	ID        uuid.UUID      // Unique identifier
	PostID    uuid.UUID      // Post engaged with
	UserID    uuid.UUID      // Engaging user
	Type      EngagementType // like | comment | share
	CreatedAt time.Time      // When the engagement happened
}

// NewEngagementRecord creates an engagement record with basic validation
func NewEngagementRecord(postID, userID uuid.UUID, engagementType EngagementType, timeProvider coreport.TimeProvider) (*EngagementRecord, error) {
	if postID == uuid.Nil || userID == uuid.Nil {
		return nil, errs.ErrInvalidRequest
	}
	if !IsValidEngagementType(engagementType) {
		return nil, errs.ErrInvalidEngagementType
	}

	return &EngagementRecord{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Type:      engagementType,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsValidEngagementType validates an engagement type name from the API boundary
func IsValidEngagementType(engagementType EngagementType) bool {
	return engagementType == EngagementLike ||
		engagementType == EngagementComment ||
		engagementType == EngagementShare
}

// CountsTowardQuota reports whether this engagement type consumes daily quota.
// Shares are unlimited and not counted.
func (e EngagementType) CountsTowardQuota() bool {
	return e == EngagementLike || e == EngagementComment
}

// QuotaAction maps an engagement type to its rate-limited action type
func (e EngagementType) QuotaAction() ActionType {
	if e == EngagementComment {
		return ActionComment
	}
	return ActionLike
}
