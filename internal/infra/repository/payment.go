package repository

import (
	"context"

	"car-rental/internal/domain/payment"
	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/pgconv"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

// Create inserts into transactions; booking_id is unique so a second payment fails with DUPLICATE_KEY.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (int64, error) {
	amount, err := pgconv.NumericFromFloat64(p.AmountPaid)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid amount_paid", err, infra.KindConstraintViolated)
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO transactions (booking_id, amount_paid, payment_date, payment_status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.BookingID, amount, pgconv.TimeToPgtype(p.PaymentDate), p.PaymentStatus,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to record payment", err)
	}
	return id, nil
}
