package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
)

// RoleRepository defines methods to interact with user role grants
type RoleRepository interface {
	// HasRole reports whether the user holds the given role
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error)

	// Assign grants a role to a user; granting an already-held role is a no-op
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	Assign(ctx context.Context, userID uuid.UUID, role entity.Role, grantedBy uuid.UUID) error

	// RemoveAllForUser drops every role grant for a user (part of user deletion)
	//
	// Possible errors:
	// - ErrTransient: if the store is unavailable
	RemoveAllForUser(ctx context.Context, userID uuid.UUID) error
}
