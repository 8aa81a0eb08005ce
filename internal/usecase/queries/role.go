package queries

import (
	"context"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
)

type RoleQueries interface {
	List(ctx context.Context, caller usecase.Caller) ([]RoleView, error)
}

type RoleReadStore interface {
	List(ctx context.Context) ([]RoleView, error)
}

type roleQueriesImpl struct {
	readStore RoleReadStore
}

func NewRoleQueries(readStore RoleReadStore) RoleQueries {
	return &roleQueriesImpl{readStore: readStore}
}

func (q *roleQueriesImpl) List(ctx context.Context, caller usecase.Caller) ([]RoleView, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	roles, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list roles")
	}
	return roles, nil
}
