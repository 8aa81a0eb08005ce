package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
	"car-rental/internal/usecase/queries"
)

type RoleReadStore struct {
	db db.DBTX
}

func NewRoleReadStore(dbtx db.DBTX) *RoleReadStore {
	return &RoleReadStore{db: dbtx}
}

func (r *RoleReadStore) List(ctx context.Context) ([]queries.RoleView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list roles", err)
	}
	defer rows.Close()

	views := []queries.RoleView{}
	for rows.Next() {
		var v queries.RoleView
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan role", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate roles", err)
	}
	return views, nil
}
