package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionType is a rate-limited user action counted per UTC day
type ActionType string

// Rate-limited action types
const (
	ActionPost    ActionType = "post"
	ActionLike    ActionType = "like"
	ActionComment ActionType = "comment"
)

// IsValidActionType validates an action type name from the API boundary
func IsValidActionType(action ActionType) bool {
	return action == ActionPost || action == ActionLike || action == ActionComment
}

// DateKey renders t as the UTC day key counters are scoped by. Day rollover
// needs no reset job: a new day keys a fresh counter row on first use.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyLimitCounter tracks one user's consumed quota for one UTC day.
// A row is created lazily on the first rate-limited action of that day.
type DailyLimitCounter struct {
	UserID        uuid.UUID // Owning user
	LimitDate     string    // UTC day key (YYYY-MM-DD)
	PostsCreated  int       // Posts created today
	LikesGiven    int       // Likes given today
	CommentsGiven int       // Comments given today
}

// Count returns the consumed count for the given action
func (c *DailyLimitCounter) Count(action ActionType) int {
	switch action {
	case ActionPost:
		return c.PostsCreated
	case ActionLike:
		return c.LikesGiven
	case ActionComment:
		return c.CommentsGiven
	}
	return 0
}

// DailyLimits is the configured per-day cap for each rate-limited action
type DailyLimits struct {
	Posts    int
	Likes    int
	Comments int
}

// LimitFor returns the configured cap for the given action
func (l DailyLimits) LimitFor(action ActionType) int {
	switch action {
	case ActionPost:
		return l.Posts
	case ActionLike:
		return l.Likes
	case ActionComment:
		return l.Comments
	}
	return 0
}

// RemainingQuota is the read projection the UI shows a user
type RemainingQuota struct {
	Posts    int `json:"posts"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}
