//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func InsertRole(t *testing.T, db DBLike, name string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO roles (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

// InsertUser stores a bcrypt hash of password so the user can log in.
func InsertUser(t *testing.T, db DBLike, username, password string, roleID int64) int64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(context.Background(),
		"INSERT INTO users (username, email, password_hash, role_id) VALUES ($1, $2, $3, $4) RETURNING id",
		username, username+"@example.com", string(hash), roleID).Scan(&id)
	require.NoError(t, err)
	return id
}

func InsertCar(t *testing.T, db DBLike, available bool) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO cars (make, model, year, price_per_day, availability_status) VALUES ('Toyota', 'Corolla', 2023, 50.5, $1) RETURNING id",
		available).Scan(&id)
	require.NoError(t, err)
	return id
}

func InsertBooking(t *testing.T, db DBLike, userID, carID int64, start, end time.Time, status string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bookings (user_id, car_id, start_date, end_date, total_cost, status) VALUES ($1, $2, $3, $4, 250.75, $5) RETURNING id",
		userID, carID, start, end, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func CarAvailable(t *testing.T, db DBLike, carID int64) bool {
	t.Helper()
	var available bool
	err := db.QueryRow(context.Background(),
		"SELECT availability_status FROM cars WHERE id = $1", carID).Scan(&available)
	require.NoError(t, err)
	return available
}

func SetCarAvailable(t *testing.T, db DBLike, carID int64, available bool) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"UPDATE cars SET availability_status = $2 WHERE id = $1", carID, available)
	require.NoError(t, err)
}

func BookingStatus(t *testing.T, db DBLike, bookingID int64) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

// CountRows counts rows of table matching an optional where clause built by the test itself.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table and restarts identities so ids start at 1.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
