package db

import (
	"context"
	"embed"
	"io/fs"

	"car-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded goose migrations through the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return errs.Wrap(err, "open embedded migrations")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations)
	if err != nil {
		return errs.Wrap(err, "create migration provider")
	}

	if _, err := provider.Up(ctx); err != nil {
		return errs.Wrap(err, "apply migrations")
	}
	return nil
}
