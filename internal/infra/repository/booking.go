package repository

import (
	"context"
	"time"

	"car-rental/internal/domain/booking"
	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	cost, err := pgconv.NumericFromFloat64(b.TotalCost)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid total_cost", err, infra.KindConstraintViolated)
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO bookings (user_id, car_id, start_date, end_date, total_cost, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		b.UserID, b.CarID, pgconv.TimeToPgtype(b.StartDate), pgconv.TimeToPgtype(b.EndDate), cost, b.Status.String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// Update never writes status; the stored one is read back into b.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	cost, err := pgconv.NumericFromFloat64(b.TotalCost)
	if err != nil {
		return infra.WrapRepoErr("invalid total_cost", err, infra.KindConstraintViolated)
	}

	var status string
	err = r.db.QueryRow(ctx,
		`UPDATE bookings
		 SET user_id = $2, car_id = $3, start_date = $4, end_date = $5, total_cost = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING status`,
		b.ID, b.UserID, b.CarID, pgconv.TimeToPgtype(b.StartDate), pgconv.TimeToPgtype(b.EndDate), cost,
	).Scan(&status)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	b.Status = booking.Status(status)
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id int64) (*booking.Booking, error) {
	var (
		b          booking.Booking
		start, end pgtype.Timestamptz
		cost       pgtype.Numeric
		status     string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, car_id, start_date, end_date, total_cost, status
		 FROM bookings
		 WHERE id = $1
		 FOR UPDATE`,
		id,
	).Scan(&b.ID, &b.UserID, &b.CarID, &start, &end, &cost, &status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b.StartDate = pgconv.TimeFromPgtype(start)
	b.EndDate = pgconv.TimeFromPgtype(end)
	b.Status = booking.Status(status)
	if b.TotalCost, err = pgconv.Float64FromNumeric(cost); err != nil {
		return nil, infra.WrapRepoErr("invalid total_cost", err)
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) ExpiredCarIDs(ctx context.Context, now time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT car_id FROM bookings WHERE end_date < $1 ORDER BY car_id`,
		pgconv.TimeToPgtype(now),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired bookings", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired booking", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expired bookings", err)
	}
	return ids, nil
}
