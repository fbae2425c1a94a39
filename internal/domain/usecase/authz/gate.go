package authz

import (
	"context"

	"github.com/google/uuid"

	"github.com/zukafarm/reward-engine/internal/domain/entity"
	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/domain/port/persistence"
)

// Gate is the capability check in front of every privileged operation.
// A failed check yields Unauthorized before any other side effect.
type Gate struct {
	roles  persistence.RoleRepository
	logger coreport.Logger
}

// NewGate creates a role authorization gate
func NewGate(roles persistence.RoleRepository, logger coreport.Logger) *Gate {
	return &Gate{roles: roles, logger: logger}
}

// HasRole reports whether the user holds the given role
func (g *Gate) HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error) {
	return g.roles.HasRole(ctx, userID, role)
}

// RequireRole returns Unauthorized unless the user holds at least one of the
// given roles
func (g *Gate) RequireRole(ctx context.Context, userID uuid.UUID, roles ...entity.Role) error {
	for _, role := range roles {
		ok, err := g.roles.HasRole(ctx, userID, role)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	g.logger.Warn("Privileged operation denied", map[string]any{
		"user_id": userID.String(),
	})
	return errs.ErrUnauthorized
}
