package authz_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	"github.com/zukafarm/reward-engine/internal/domain/usecase/authz"
	"github.com/zukafarm/reward-engine/mocks/port/core"
	"github.com/zukafarm/reward-engine/mocks/port/persistence"
)

func newTestLogger() *core.MockLogger {
	logger := new(core.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestGate_RequireRole(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	t.Run("should pass when the user holds the role", func(t *testing.T) {
		mockRoles := new(persistence.MockRoleRepository)
		mockRoles.On("HasRole", ctx, userID, entity.RoleAdmin).Return(true, nil)

		gate := authz.NewGate(mockRoles, newTestLogger())
		err := gate.RequireRole(ctx, userID, entity.RoleAdmin)

		require.NoError(t, err)
	})

	t.Run("should accept any of several allowed roles", func(t *testing.T) {
		mockRoles := new(persistence.MockRoleRepository)
		mockRoles.On("HasRole", ctx, userID, entity.RoleAdmin).Return(false, nil)
		mockRoles.On("HasRole", ctx, userID, entity.RoleModerator).Return(true, nil)

		gate := authz.NewGate(mockRoles, newTestLogger())
		err := gate.RequireRole(ctx, userID, entity.RoleAdmin, entity.RoleModerator)

		require.NoError(t, err)
		mockRoles.AssertExpectations(t)
	})

	t.Run("should deny when no role matches", func(t *testing.T) {
		mockRoles := new(persistence.MockRoleRepository)
		mockRoles.On("HasRole", ctx, userID, entity.RoleAdmin).Return(false, nil)
		mockRoles.On("HasRole", ctx, userID, entity.RoleModerator).Return(false, nil)

		gate := authz.NewGate(mockRoles, newTestLogger())
		err := gate.RequireRole(ctx, userID, entity.RoleAdmin, entity.RoleModerator)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should surface store failures unchanged", func(t *testing.T) {
		mockRoles := new(persistence.MockRoleRepository)
		mockRoles.On("HasRole", ctx, userID, entity.RoleAdmin).Return(false, errs.ErrTransient)

		gate := authz.NewGate(mockRoles, newTestLogger())
		err := gate.RequireRole(ctx, userID, entity.RoleAdmin)

		assert.ErrorIs(t, err, errs.ErrTransient)
	})
}

func TestGate_HasRole(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	mockRoles := new(persistence.MockRoleRepository)
	mockRoles.On("HasRole", ctx, userID, entity.RoleUser).Return(true, nil)

	gate := authz.NewGate(mockRoles, newTestLogger())
	ok, err := gate.HasRole(ctx, userID, entity.RoleUser)

	require.NoError(t, err)
	assert.True(t, ok)
}
