package queries

import (
	"context"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
)

type UserQueries interface {
	List(ctx context.Context, caller usecase.Caller) ([]UserView, error)
}

type UserReadStore interface {
	List(ctx context.Context) ([]UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) List(ctx context.Context, caller usecase.Caller) ([]UserView, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	users, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list users")
	}
	return users, nil
}
