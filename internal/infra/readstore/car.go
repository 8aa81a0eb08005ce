package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

func (r *CarReadStore) List(ctx context.Context) ([]queries.CarView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, make, model, year, price_per_day, availability_status FROM cars ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	views := []queries.CarView{}
	for rows.Next() {
		var (
			v     queries.CarView
			price pgtype.Numeric
		)
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &price, &v.AvailabilityStatus); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car", err)
		}
		if v.PricePerDay, err = pgconv.Float64FromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid price_per_day", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cars", err)
	}
	return views, nil
}
