package dto

import "time"

// EngagementRequest represents the API request for engaging with a post
type EngagementRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Type   string `json:"type" binding:"required,oneof=like comment share"`
}

// EngagementResponse represents a recorded engagement and the credit it earned
type EngagementResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Credited  int64     `json:"credited"`
	CreatedAt time.Time `json:"createdAt"`
}
