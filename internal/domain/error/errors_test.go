package error_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/zukafarm/reward-engine/internal/domain/error"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"insufficient funds", errs.ErrInsufficientFunds, errs.CodeInsufficientFunds},
		{"quota exceeded", errs.ErrQuotaExceeded, errs.CodeQuotaExceeded},
		{"duplicate engagement", errs.ErrDuplicateEngagement, errs.CodeDuplicateEngagement},
		{"self engagement", errs.ErrSelfEngagement, errs.CodeSelfEngagement},
		{"invalid transition", errs.ErrInvalidTransition, errs.CodeInvalidTransition},
		{"impression capped", errs.ErrImpressionCapped, errs.CodeImpressionCapped},
		{"unauthorized", errs.ErrUnauthorized, errs.CodeUnauthorized},
		{"account not found", errs.ErrAccountNotFound, errs.CodeNotFound},
		{"content not found", errs.ErrContentNotFound, errs.CodeNotFound},
		{"invalid action type", errs.ErrInvalidActionType, errs.CodeInvalidRequest},
		{"invalid role", errs.ErrInvalidRole, errs.CodeInvalidRequest},
		{"transient", errs.ErrTransient, errs.CodeTransient},
		{"wrapped transient", fmt.Errorf("%w: deadlock", errs.ErrTransient), errs.CodeTransient},
		{"unknown error", fmt.Errorf("boom"), errs.CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, errs.ErrorCode(tt.err))
		})
	}
}

func TestDetailedErrors(t *testing.T) {
	t.Run("insufficient funds error matches its sentinel and carries context", func(t *testing.T) {
		err := errs.NewInsufficientFundsError("user-1", -500, 100)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Contains(t, err.Error(), "user-1")
		assert.True(t, errs.IsInsufficientFundsError(err))
	})

	t.Run("transition error names both states", func(t *testing.T) {
		err := errs.NewTransitionError("content-1", "rejected", "approved")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "rejected -> approved")
	})

	t.Run("quota error names the action and limit", func(t *testing.T) {
		err := errs.NewQuotaError("user-1", "like", 10)

		assert.ErrorIs(t, err, errs.ErrQuotaExceeded)
		assert.Contains(t, err.Error(), "like")
		assert.Contains(t, err.Error(), "10")
		assert.True(t, errs.IsQuotaExceededError(err))
	})
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, errs.IsNotFoundError(errs.ErrNotFound))
	assert.True(t, errs.IsNotFoundError(errs.ErrAccountNotFound))
	assert.True(t, errs.IsNotFoundError(errs.ErrContentNotFound))
	assert.False(t, errs.IsNotFoundError(errs.ErrUnauthorized))
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, errs.IsTransientError(fmt.Errorf("%w: lock timeout", errs.ErrTransient)))
	assert.False(t, errs.IsTransientError(errs.ErrQuotaExceeded))
}
