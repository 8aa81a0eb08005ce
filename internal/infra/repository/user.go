package repository

import (
	"context"

	"car-rental/internal/domain/user"
	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		u.Username().Value(), u.Email().Value(), u.PasswordHash(), u.RoleID(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var (
		username, email, hash string
		roleID                int64
	)
	err := r.db.QueryRow(ctx,
		`SELECT username, email, password_hash, role_id FROM users WHERE id = $1`,
		id,
	).Scan(&username, &email, &hash, &roleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return user.Reconstruct(id, username, email, hash, roleID), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users
		 SET username = $2, email = $3, password_hash = $4, role_id = $5, updated_at = now()
		 WHERE id = $1`,
		u.ID(), u.Username().Value(), u.Email().Value(), u.PasswordHash(), u.RoleID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}
