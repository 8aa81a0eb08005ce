package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.username, u.email, u.role_id, r.name
		 FROM users u
		 LEFT JOIN roles r ON r.id = u.role_id
		 ORDER BY u.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := []queries.UserView{}
	for rows.Next() {
		var (
			v        queries.UserView
			roleName pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.Username, &v.Email, &v.RoleID, &roleName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		v.RoleName = pgconv.StringFromPgtype(roleName)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return views, nil
}

func (r *UserReadStore) FindCredentialsByUsername(ctx context.Context, username string) (*queries.UserCredentials, error) {
	var (
		creds    queries.UserCredentials
		roleName pgtype.Text
	)
	err := r.db.QueryRow(ctx,
		`SELECT u.id, u.username, u.email, u.role_id, r.name, u.password_hash
		 FROM users u
		 LEFT JOIN roles r ON r.id = u.role_id
		 WHERE u.username = $1`,
		username,
	).Scan(&creds.User.ID, &creds.User.Username, &creds.User.Email, &creds.User.RoleID, &roleName, &creds.PasswordHash)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	creds.User.RoleName = pgconv.StringFromPgtype(roleName)
	return &creds, nil
}

// RoleNameByUserID returns "" when the user exists but its role row is gone.
func (r *UserReadStore) RoleNameByUserID(ctx context.Context, userID int64) (string, error) {
	var roleName pgtype.Text
	err := r.db.QueryRow(ctx,
		`SELECT r.name
		 FROM users u
		 LEFT JOIN roles r ON r.id = u.role_id
		 WHERE u.id = $1`,
		userID,
	).Scan(&roleName)
	if err != nil {
		return "", infra.WrapRepoErr("failed to resolve user role", err)
	}
	return pgconv.StringFromPgtype(roleName), nil
}
