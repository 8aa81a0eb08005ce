package repository

import (
	"context"
	"time"

	"car-rental/internal/domain/booking"
	"car-rental/internal/domain/car"
	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/pgconv"
)

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(dbtx db.DBTX) *CarRepository {
	return &CarRepository{db: dbtx}
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) (int64, error) {
	price, err := pgconv.NumericFromFloat64(c.PricePerDay)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid price_per_day", err, infra.KindConstraintViolated)
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO cars (make, model, year, price_per_day, availability_status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.Make, c.Model, c.Year, price, c.AvailabilityStatus,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create car", err)
	}
	return id, nil
}

// Update changes the descriptive columns only and reads back the stored availability.
func (r *CarRepository) Update(ctx context.Context, c *car.Car) error {
	price, err := pgconv.NumericFromFloat64(c.PricePerDay)
	if err != nil {
		return infra.WrapRepoErr("invalid price_per_day", err, infra.KindConstraintViolated)
	}

	err = r.db.QueryRow(ctx,
		`UPDATE cars
		 SET make = $2, model = $3, year = $4, price_per_day = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING availability_status`,
		c.ID, c.Make, c.Model, c.Year, price,
	).Scan(&c.AvailabilityStatus)
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("car not found")
	}
	return nil
}

func (r *CarRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cars SET availability_status = $2, updated_at = now() WHERE id = $1`,
		id, available,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("car not found")
	}
	return nil
}

func (r *CarRepository) ReleaseIfIdle(ctx context.Context, id int64, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE cars c
		 SET availability_status = TRUE, updated_at = now()
		 WHERE c.id = $1
		   AND c.availability_status = FALSE
		   AND NOT EXISTS (
		       SELECT 1 FROM bookings b
		       WHERE b.car_id = c.id
		         AND b.status = $2
		         AND b.end_date >= $3
		   )`,
		id, booking.StatusConfirmed.String(), pgconv.TimeToPgtype(now),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release car", err)
	}
	return tag.RowsAffected() > 0, nil
}
