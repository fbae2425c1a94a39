package dto

import "time"

// CreateContentRequest represents the API request for creating a post or an ad
type CreateContentRequest struct {
	OwnerID     string `json:"ownerId" binding:"required,uuid"`
	Kind        string `json:"kind" binding:"required,oneof=post ad"`
	Body        string `json:"body"`
	MediaURL    string `json:"mediaUrl"`
	BudgetCents int64  `json:"budgetCents"`
	DailyCap    int    `json:"dailyCap"`
}

// ContentResponse represents a content item in API responses
type ContentResponse struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"ownerId"`
	Kind           string    `json:"kind"`
	Body           string    `json:"body,omitempty"`
	MediaURL       string    `json:"mediaUrl,omitempty"`
	ApprovalStatus string    `json:"approvalStatus"`
	RewardIssued   bool      `json:"rewardIssued"`
	Active         bool      `json:"active"`
	BudgetCents    int64     `json:"budgetCents,omitempty"`
	DailyCap       int       `json:"dailyCap,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ApprovalRequest represents the API request for an approval transition
type ApprovalRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
