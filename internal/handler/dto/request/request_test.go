//go:build unit

package request_test

import (
	"testing"
	"time"

	"car-rental/internal/domain/booking"
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/user"
	reqdto "car-rental/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: "2024-12-01", want: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 with offset normalised to UTC", input: "2024-12-01T09:00:00+09:00", want: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", input: " 2024-12-05 ", want: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "12/01/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reqdto.ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, reqdto.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestCreateBookingRequest_ToDomain(t *testing.T) {
	t.Run("valid request creates pending booking", func(t *testing.T) {
		req := reqdto.CreateBookingRequest{UserID: 1, CarID: 1, StartDate: "2024-12-01", EndDate: "2024-12-05", TotalCost: 250.75}

		b, err := req.ToDomain()

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status)
		assert.Equal(t, 250.75, b.TotalCost)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		req := reqdto.CreateBookingRequest{UserID: 1, CarID: 1, StartDate: "2024-12-05", EndDate: "2024-12-01", TotalCost: 10}

		_, err := req.ToDomain()

		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		req := reqdto.CreateBookingRequest{UserID: 1, CarID: 1, StartDate: "tomorrow", EndDate: "2024-12-01", TotalCost: 10}

		_, err := req.ToDomain()

		assert.ErrorIs(t, err, reqdto.ErrInvalidDate)
	})
}

func TestUpdateBookingRequest_ToDomainKeepsID(t *testing.T) {
	req := reqdto.UpdateBookingRequest{BookingID: 9, UserID: 1, CarID: 2, StartDate: "2024-12-01", EndDate: "2024-12-02", TotalCost: 40}

	b, err := req.ToDomain()

	require.NoError(t, err)
	assert.Equal(t, int64(9), b.ID)
	assert.Equal(t, int64(2), b.CarID)
}

func TestCreateUserRequest_ToDomain(t *testing.T) {
	req := reqdto.CreateUserRequest{Username: "alice", Email: "not-an-email", Password: "pw", RoleID: 1}

	_, err := req.ToDomain("hash")

	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestUpdateCarRequest_ToDomain(t *testing.T) {
	req := reqdto.UpdateCarRequest{CarID: 3, Make: "Honda", Model: "Civic", Year: 2020, PricePerDay: 30}

	c, err := req.ToDomain()

	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)

	req.Year = 1700
	_, err = req.ToDomain()
	assert.ErrorIs(t, err, car.ErrInvalidYear)
}
