package repository

import (
	"context"

	"car-rental/internal/domain/role"
	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
)

type RoleRepository struct {
	db db.DBTX
}

func NewRoleRepository(dbtx db.DBTX) *RoleRepository {
	return &RoleRepository{db: dbtx}
}

func (r *RoleRepository) Create(ctx context.Context, rl *role.Role) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO roles (name) VALUES ($1) RETURNING id`,
		rl.Name,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create role", err)
	}
	return id, nil
}

func (r *RoleRepository) Update(ctx context.Context, rl *role.Role) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE roles SET name = $2, updated_at = now() WHERE id = $1`,
		rl.ID, rl.Name,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("role not found")
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("role not found")
	}
	return nil
}
