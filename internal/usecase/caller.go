package usecase

import (
	"context"

	"car-rental/internal/domain/role"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
)

var ErrForbidden = errs.Define("admin privileges required", errs.ErrForbidden)

// Caller is the authenticated identity resolved once per request.
type Caller struct {
	UserID  int64
	IsAdmin bool
}

func (c Caller) RequireAdmin() error {
	if !c.IsAdmin {
		return ErrForbidden
	}
	return nil
}

type RoleLookup interface {
	RoleNameByUserID(ctx context.Context, userID int64) (string, error)
}

type Authorizer interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	ResolveCaller(ctx context.Context, userID int64) (Caller, error)
}

type authorizerImpl struct {
	roles RoleLookup
}

func NewAuthorizer(roles RoleLookup) Authorizer {
	return &authorizerImpl{roles: roles}
}

// IsAdmin is false for unknown users and users without a role. Lookup faults are returned.
func (a *authorizerImpl) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	name, err := a.roles.RoleNameByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Wrap(err, "resolve caller role")
	}
	return role.IsAdminName(name), nil
}

func (a *authorizerImpl) ResolveCaller(ctx context.Context, userID int64) (Caller, error) {
	isAdmin, err := a.IsAdmin(ctx, userID)
	if err != nil {
		return Caller{}, err
	}
	return Caller{UserID: userID, IsAdmin: isAdmin}, nil
}
