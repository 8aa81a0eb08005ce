//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/domain/booking"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra/metrics"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/commands"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/memuow"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCommands_Create(t *testing.T) {
	t.Run("new booking is pending", func(t *testing.T) {
		store := memuow.New()
		userID, carID, _ := seedScenario(t, store)
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(fixedNow))
		req := builder.NewBookingBuilder().WithUserID(userID).WithCarID(carID).BuildCreateRequestDTO()

		created, err := cmds.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, created.Status)
		stored, ok := store.Booking(created.ID)
		require.True(t, ok)
		assert.Equal(t, 250.75, stored.TotalCost)
	})

	t.Run("unknown car is not found", func(t *testing.T) {
		store := memuow.New()
		userID, _, _ := seedScenario(t, store)
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(fixedNow))
		req := builder.NewBookingBuilder().WithUserID(userID).WithCarID(404).BuildCreateRequestDTO()

		_, err := cmds.Create(context.Background(), req)

		assert.True(t, errs.Is(err, commands.ErrBookingReferenceNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("end before start is a validation error", func(t *testing.T) {
		cmds := commands.NewBookingCommands(memuow.New(), clock.NewMockClock(fixedNow))
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.StartDate, req.EndDate = req.EndDate, req.StartDate

		_, err := cmds.Create(context.Background(), req)

		assert.True(t, errs.Is(err, booking.ErrInvalidWindow))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestBookingCommands_UpdateCannotChangeStatus(t *testing.T) {
	store := memuow.New()
	userID, carID, bookingID := seedScenario(t, store)
	confirm := commands.NewTransactionCommands(store, clock.NewMockClock(fixedNow), metrics.NewMetrics(prometheus.NewRegistry()), discardLogger())
	_, err := confirm.Confirm(context.Background(), adminCaller, reqdto.CreateTransactionRequest{BookingID: bookingID, AmountPaid: 10})
	require.NoError(t, err)
	cmds := commands.NewBookingCommands(store, clock.NewMockClock(fixedNow))

	updated, err := cmds.Update(context.Background(), reqdto.UpdateBookingRequest{
		BookingID: bookingID, UserID: userID, CarID: carID,
		StartDate: "2024-12-02", EndDate: "2024-12-06", TotalCost: 300,
	})

	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, updated.Status)
	stored, _ := store.Booking(bookingID)
	assert.Equal(t, booking.StatusConfirmed, stored.Status)
	assert.Equal(t, 300.0, stored.TotalCost)
}

func TestBookingCommands_UpdateMissing(t *testing.T) {
	store := memuow.New()
	userID, carID, _ := seedScenario(t, store)
	cmds := commands.NewBookingCommands(store, clock.NewMockClock(fixedNow))

	_, err := cmds.Update(context.Background(), reqdto.UpdateBookingRequest{
		BookingID: 999, UserID: userID, CarID: carID,
		StartDate: "2024-12-02", EndDate: "2024-12-06", TotalCost: 300,
	})

	assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
}

func TestBookingCommands_DeleteCascadesPayment(t *testing.T) {
	store := memuow.New()
	_, _, bookingID := seedScenario(t, store)
	confirm := commands.NewTransactionCommands(store, clock.NewMockClock(fixedNow), metrics.NewMetrics(prometheus.NewRegistry()), discardLogger())
	_, err := confirm.Confirm(context.Background(), adminCaller, reqdto.CreateTransactionRequest{BookingID: bookingID, AmountPaid: 10})
	require.NoError(t, err)
	require.Len(t, store.Payments(), 1)

	err = commands.NewBookingCommands(store, clock.NewMockClock(fixedNow)).Delete(context.Background(), reqdto.DeleteBookingRequest{BookingID: bookingID})

	require.NoError(t, err)
	assert.Empty(t, store.Payments())
	err = commands.NewBookingCommands(store, clock.NewMockClock(fixedNow)).Delete(context.Background(), reqdto.DeleteBookingRequest{BookingID: bookingID})
	assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
}

var beforeWindow = time.Date(2024, 11, 30, 9, 0, 0, 0, time.UTC)

// confirmedScenario seeds the scenario plus a second available car and confirms the booking at now.
func confirmedScenario(t *testing.T, now time.Time) (store *memuow.Store, userID, carID, otherCarID, bookingID int64) {
	t.Helper()
	store = memuow.New()
	userID, carID, bookingID = seedScenario(t, store)
	otherCarID = store.SeedCar(*builder.NewCarBuilder().WithID(carID + 1).BuildStored())

	confirm := commands.NewTransactionCommands(store, clock.NewMockClock(now), metrics.NewMetrics(prometheus.NewRegistry()), discardLogger())
	_, err := confirm.Confirm(context.Background(), adminCaller, reqdto.CreateTransactionRequest{BookingID: bookingID, AmountPaid: 10})
	require.NoError(t, err)
	return store, userID, carID, otherCarID, bookingID
}

func carAvailable(t *testing.T, store *memuow.Store, id int64) bool {
	t.Helper()
	c, ok := store.Car(id)
	require.True(t, ok)
	return c.AvailabilityStatus
}

func TestBookingCommands_DeleteConfirmedReleasesCar(t *testing.T) {
	t.Run("live confirmation gives the car back", func(t *testing.T) {
		store, _, carID, _, bookingID := confirmedScenario(t, beforeWindow)
		require.False(t, carAvailable(t, store, carID))
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(beforeWindow))

		err := cmds.Delete(context.Background(), reqdto.DeleteBookingRequest{BookingID: bookingID})

		require.NoError(t, err)
		assert.True(t, carAvailable(t, store, carID))
		assert.Empty(t, store.Payments())
	})

	t.Run("another live confirmation keeps the car", func(t *testing.T) {
		store, userID, carID, _, bookingID := confirmedScenario(t, beforeWindow)
		other := builder.NewBookingBuilder().WithID(0).WithUserID(userID).WithCarID(carID).
			WithWindow(time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC)).
			Confirmed().BuildStored()
		store.SeedBooking(*other)
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(beforeWindow))

		err := cmds.Delete(context.Background(), reqdto.DeleteBookingRequest{BookingID: bookingID})

		require.NoError(t, err)
		assert.False(t, carAvailable(t, store, carID))
	})

	t.Run("pending booking leaves availability alone", func(t *testing.T) {
		store := memuow.New()
		_, carID, bookingID := seedScenario(t, store)
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(beforeWindow))

		err := cmds.Delete(context.Background(), reqdto.DeleteBookingRequest{BookingID: bookingID})

		require.NoError(t, err)
		assert.True(t, carAvailable(t, store, carID))
	})
}

func TestBookingCommands_UpdateConfirmedMovesAvailability(t *testing.T) {
	t.Run("moving to another car swaps availability", func(t *testing.T) {
		store, userID, carID, otherCarID, bookingID := confirmedScenario(t, beforeWindow)
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(beforeWindow))

		_, err := cmds.Update(context.Background(), reqdto.UpdateBookingRequest{
			BookingID: bookingID, UserID: userID, CarID: otherCarID,
			StartDate: "2024-12-01", EndDate: "2024-12-05", TotalCost: 250.75,
		})

		require.NoError(t, err)
		assert.True(t, carAvailable(t, store, carID))
		assert.False(t, carAvailable(t, store, otherCarID))
	})

	t.Run("window moved into the past releases the car", func(t *testing.T) {
		store, userID, carID, _, bookingID := confirmedScenario(t, beforeWindow)
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(beforeWindow))

		_, err := cmds.Update(context.Background(), reqdto.UpdateBookingRequest{
			BookingID: bookingID, UserID: userID, CarID: carID,
			StartDate: "2024-11-01", EndDate: "2024-11-03", TotalCost: 250.75,
		})

		require.NoError(t, err)
		assert.True(t, carAvailable(t, store, carID))
	})

	t.Run("same car and live window keeps it unavailable", func(t *testing.T) {
		store, userID, carID, _, bookingID := confirmedScenario(t, beforeWindow)
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(beforeWindow))

		_, err := cmds.Update(context.Background(), reqdto.UpdateBookingRequest{
			BookingID: bookingID, UserID: userID, CarID: carID,
			StartDate: "2024-12-02", EndDate: "2024-12-08", TotalCost: 300,
		})

		require.NoError(t, err)
		assert.False(t, carAvailable(t, store, carID))
	})

	t.Run("pending booking leaves availability alone", func(t *testing.T) {
		store := memuow.New()
		userID, carID, bookingID := seedScenario(t, store)
		otherCarID := store.SeedCar(*builder.NewCarBuilder().WithID(carID + 1).BuildStored())
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(beforeWindow))

		_, err := cmds.Update(context.Background(), reqdto.UpdateBookingRequest{
			BookingID: bookingID, UserID: userID, CarID: otherCarID,
			StartDate: "2024-12-01", EndDate: "2024-12-05", TotalCost: 250.75,
		})

		require.NoError(t, err)
		assert.True(t, carAvailable(t, store, carID))
		assert.True(t, carAvailable(t, store, otherCarID))
	})

	t.Run("failed car update rolls the booking back", func(t *testing.T) {
		store, userID, carID, otherCarID, bookingID := confirmedScenario(t, beforeWindow)
		store.SetAvailabilityErr = errs.New("connection reset")
		cmds := commands.NewBookingCommands(store, clock.NewMockClock(beforeWindow))

		_, err := cmds.Update(context.Background(), reqdto.UpdateBookingRequest{
			BookingID: bookingID, UserID: userID, CarID: otherCarID,
			StartDate: "2024-12-01", EndDate: "2024-12-05", TotalCost: 250.75,
		})

		assert.True(t, errs.Is(err, commands.ErrCarUpdateFailed))
		stored, _ := store.Booking(bookingID)
		assert.Equal(t, carID, stored.CarID)
		assert.False(t, carAvailable(t, store, carID))
		assert.True(t, carAvailable(t, store, otherCarID))
	})
}
