//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"car-rental/internal/domain/role"
	"car-rental/internal/pkg/password"
	"car-rental/internal/usecase"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/memuow"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminCaller    = usecase.Caller{UserID: 1, IsAdmin: true}
	customerCaller = usecase.Caller{UserID: 2, IsAdmin: false}
	fixedNow       = time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHasher() *password.Hasher {
	return password.NewHasher(bcrypt.MinCost)
}

// seedScenario stores role admin, user alice (password "pw"), one available car and one pending booking.
func seedScenario(t *testing.T, store *memuow.Store) (userID, carID, bookingID int64) {
	t.Helper()

	store.SeedRole(role.Role{ID: 1, Name: role.AdminName})

	hash, err := testHasher().Hash("pw")
	require.NoError(t, err)
	userID = store.SeedUser(builder.NewUserBuilder().WithPasswordHash(hash).BuildStored())

	carID = store.SeedCar(*builder.NewCarBuilder().BuildStored())
	bookingID = store.SeedBooking(*builder.NewBookingBuilder().WithUserID(userID).WithCarID(carID).BuildStored())
	return userID, carID, bookingID
}
