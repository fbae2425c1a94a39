package dto

import "time"

// AdjustBalanceRequest represents the API request for a manual balance adjustment
type AdjustBalanceRequest struct {
	WalletDelta int64  `json:"walletDelta"`
	ZukaDelta   int64  `json:"zukaDelta"`
	Reason      string `json:"reason" binding:"required"`
}

// UpdateVerificationRequest represents the API request for changing verification status
type UpdateVerificationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending verified rejected"`
}

// AssignRoleRequest represents the API request for granting a role
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin moderator user"`
}

// DeleteUserRequest represents the API request for an audited user deletion
type DeleteUserRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// AuditLogResponse represents one audit trail entry in API responses
type AuditLogResponse struct {
	ID         string         `json:"id"`
	AdminID    string         `json:"adminId"`
	Action     string         `json:"action"`
	TargetType string         `json:"targetType"`
	TargetID   string         `json:"targetId"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
