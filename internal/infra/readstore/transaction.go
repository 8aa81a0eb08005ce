package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionReadStore struct {
	db db.DBTX
}

func NewTransactionReadStore(dbtx db.DBTX) *TransactionReadStore {
	return &TransactionReadStore{db: dbtx}
}

func (r *TransactionReadStore) List(ctx context.Context) ([]queries.TransactionView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, booking_id, amount_paid, payment_date, payment_status FROM transactions ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]queries.TransactionView, error) {
	defer rows.Close()

	views := []queries.TransactionView{}
	for rows.Next() {
		var (
			v      queries.TransactionView
			amount pgtype.Numeric
			paidAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.BookingID, &amount, &paidAt, &v.PaymentStatus); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction", err)
		}
		paid, err := pgconv.Float64FromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid amount_paid", err)
		}
		v.AmountPaid = paid
		v.PaymentDate = pgconv.TimeFromPgtype(paidAt)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transactions", err)
	}
	return views, nil
}
