package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
)

// Audit actions recorded for privileged mutations
const (
	AuditUpdateBalance      = "update_balance"
	AuditUpdateVerification = "update_verification_status"
	AuditDeleteUser         = "delete_user"
	AuditAssignRole         = "assign_role"
	AuditApproveContent     = "approve_content"
	AuditRejectContent      = "reject_content"
)

// Audit target types
const (
	TargetUser    = "user"
	TargetContent = "content"
)

// AuditLogEntry is one immutable record of a privileged mutation. Entries are
// append-only; any operation that must be audited writes its entry in the
// same atomic scope as the mutation it documents.
type AuditLogEntry struct {
	ID         uuid.UUID      // Unique identifier
	AdminID    uuid.UUID      // Administrator who performed the action
	Action     string         // What was done (see Audit* constants)
	TargetType string         // Kind of entity acted on
	TargetID   uuid.UUID      // Entity acted on
	Details    map[string]any // Structured context (reason, deltas, old/new values)
	CreatedAt  time.Time      // When the action happened
}

// NewAuditLogEntry creates an audit entry with basic validation
func NewAuditLogEntry(adminID uuid.UUID, action, targetType string, targetID uuid.UUID, details map[string]any, timeProvider coreport.TimeProvider) (*AuditLogEntry, error) {
	if adminID == uuid.Nil || action == "" || targetType == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &AuditLogEntry{
		ID:         uuid.New(),
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		CreatedAt:  timeProvider.Now(),
	}, nil
}
