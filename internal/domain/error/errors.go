package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds   = 4001
	CodeInvalidAmount       = 4002
	CodeQuotaExceeded       = 4003
	CodeDuplicateEngagement = 4004
	CodeSelfEngagement      = 4005
	CodeInvalidTransition   = 4006
	CodeConstraintViolation = 4007
	CodeImpressionCapped    = 4008
	CodeInvalidRequest      = 4009
	CodeUnauthorized        = 4030
	CodeNotFound            = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeTransient      = 5030
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a debit would take a balance below zero
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when a ledger amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrQuotaExceeded is returned when a rate-limited action hits its daily cap
	ErrQuotaExceeded = errors.New("daily limit reached")

	// ErrDuplicateEngagement is returned when a (post, user, type) engagement already exists
	ErrDuplicateEngagement = errors.New("engagement already recorded")

	// ErrSelfEngagement is returned when a user engages with their own content
	ErrSelfEngagement = errors.New("self-engagement is forbidden")

	// ErrInvalidTransition is returned when a content item is not in a state
	// that permits the requested approval transition
	ErrInvalidTransition = errors.New("invalid approval transition")

	// ErrImpressionCapped is returned when an ad has used up its daily impressions
	ErrImpressionCapped = errors.New("ad daily impression cap reached")

	// ErrUnauthorized is returned when the caller lacks the role a privileged
	// operation requires
	ErrUnauthorized = errors.New("caller is not authorized")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrContentNotFound is returned when the requested content item doesn't exist
	ErrContentNotFound = errors.New("content not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidActionType is returned for an unknown rate-limited action type
	ErrInvalidActionType = errors.New("invalid action type")

	// ErrInvalidEngagementType is returned for an unknown engagement type
	ErrInvalidEngagementType = errors.New("invalid engagement type")

	// ErrInvalidContentKind is returned for an unknown content kind
	ErrInvalidContentKind = errors.New("invalid content kind")

	// ErrInvalidRole is returned for an unknown role name
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDuplicateAccount is returned when creating an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrConstraintViolation is returned when a store constraint is violated
	ErrConstraintViolation = errors.New("store constraint violation")

	// ErrTransient is returned after store contention or connectivity failures
	// have exhausted their retry budget; the caller may retry the whole request
	ErrTransient = errors.New("transient store error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrQuotaExceeded):
		return CodeQuotaExceeded
	case errors.Is(err, ErrDuplicateEngagement):
		return CodeDuplicateEngagement
	case errors.Is(err, ErrSelfEngagement):
		return CodeSelfEngagement
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrImpressionCapped):
		return CodeImpressionCapped
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidActionType),
		errors.Is(err, ErrInvalidEngagementType), errors.Is(err, ErrInvalidContentKind),
		errors.Is(err, ErrInvalidRole):
		return CodeInvalidRequest
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrTransient):
		return CodeTransient
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	UserID  string
	Amount  int64
	Balance int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %s: required %d, available %d",
		e.UserID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.Balance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID string, amount, balance int64) error {
	return &InsufficientFundsError{UserID: userID, Amount: amount, Balance: balance}
}

// TransitionError carries the state that made an approval transition illegal
type TransitionError struct {
	ContentID string
	From      string
	To        string
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition for content %s: %s -> %s", e.ContentID, e.From, e.To)
}

// Is checks if the target error is an ErrInvalidTransition
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_transition",
		"content_id": e.ContentID,
		"from":       e.From,
		"to":         e.To,
		"error_code": CodeInvalidTransition,
	}
}

// NewTransitionError creates a detailed invalid transition error
func NewTransitionError(contentID, from, to string) error {
	return &TransitionError{ContentID: contentID, From: from, To: to}
}

// QuotaError reports which action ran out of quota and the limit that applied
type QuotaError struct {
	UserID     string
	ActionType string
	Limit      int
}

// Error implements the error interface
func (e *QuotaError) Error() string {
	return fmt.Sprintf("daily %s limit reached for user %s (limit %d)",
		e.ActionType, e.UserID, e.Limit)
}

// Is checks if the target error is an ErrQuotaExceeded
func (e *QuotaError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// LogFields returns a map of fields for structured logging
func (e *QuotaError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "quota_exceeded",
		"user_id":     e.UserID,
		"action_type": e.ActionType,
		"limit":       e.Limit,
		"error_code":  CodeQuotaExceeded,
	}
}

// NewQuotaError creates a detailed quota exceeded error
func NewQuotaError(userID, actionType string, limit int) error {
	return &QuotaError{UserID: userID, ActionType: actionType, Limit: limit}
}

// IsQuotaExceededError checks if the error reports an exhausted daily quota
func IsQuotaExceededError(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

// IsDuplicateEngagementError checks if the error is a duplicate engagement error
func IsDuplicateEngagementError(err error) bool {
	return errors.Is(err, ErrDuplicateEngagement)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUnauthorizedError checks if the error is an authorization failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrContentNotFound)
}

// IsTransientError checks if the error may succeed on a retry of the whole request
func IsTransientError(err error) bool {
	return errors.Is(err, ErrTransient)
}
