package queries

import (
	"context"

	"car-rental/internal/pkg/errs"
)

// CarQueries is readable by any authenticated caller.
type CarQueries interface {
	List(ctx context.Context) ([]CarView, error)
}

type CarReadStore interface {
	List(ctx context.Context) ([]CarView, error)
}

type carQueriesImpl struct {
	readStore CarReadStore
}

func NewCarQueries(readStore CarReadStore) CarQueries {
	return &carQueriesImpl{readStore: readStore}
}

func (q *carQueriesImpl) List(ctx context.Context) ([]CarView, error) {
	cars, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list cars")
	}
	return cars, nil
}
