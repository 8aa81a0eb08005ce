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

const bookingColumns = `id, user_id, car_id, start_date, end_date, total_cost, status`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) List(ctx context.Context) ([]queries.BookingView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return collectBookings(rows)
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID int64) ([]queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]queries.BookingView, error) {
	defer rows.Close()

	views := []queries.BookingView{}
	for rows.Next() {
		var (
			v          queries.BookingView
			start, end pgtype.Timestamptz
			cost       pgtype.Numeric
		)
		if err := rows.Scan(&v.ID, &v.UserID, &v.CarID, &start, &end, &cost, &v.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		v.StartDate = pgconv.TimeFromPgtype(start)
		v.EndDate = pgconv.TimeFromPgtype(end)
		total, err := pgconv.Float64FromNumeric(cost)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid total_cost", err)
		}
		v.TotalCost = total
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}
