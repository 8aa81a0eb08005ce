package queries

import (
	"context"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
)

type TransactionQueries interface {
	List(ctx context.Context, caller usecase.Caller) ([]TransactionView, error)
}

type TransactionReadStore interface {
	List(ctx context.Context) ([]TransactionView, error)
}

type transactionQueriesImpl struct {
	readStore TransactionReadStore
}

func NewTransactionQueries(readStore TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{readStore: readStore}
}

func (q *transactionQueriesImpl) List(ctx context.Context, caller usecase.Caller) ([]TransactionView, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	transactions, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list transactions")
	}
	return transactions, nil
}
