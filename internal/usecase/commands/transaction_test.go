//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"car-rental/internal/domain/booking"
	"car-rental/internal/domain/payment"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra"
	"car-rental/internal/infra/metrics"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/commands"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/memuow"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type confirmFixture struct {
	store   *memuow.Store
	metrics *metrics.Metrics
	cmds    commands.TransactionCommands
}

func newConfirmFixture() *confirmFixture {
	store := memuow.New()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return &confirmFixture{
		store:   store,
		metrics: m,
		cmds:    commands.NewTransactionCommands(store, clock.NewMockClock(fixedNow), m, discardLogger()),
	}
}

func (f *confirmFixture) outcomes(outcome string) float64 {
	return testutil.ToFloat64(f.metrics.BookingConfirmations.WithLabelValues(outcome))
}

func TestConfirm_Success(t *testing.T) {
	f := newConfirmFixture()
	_, carID, bookingID := seedScenario(t, f.store)

	result, err := f.cmds.Confirm(context.Background(), adminCaller, reqdto.CreateTransactionRequest{
		BookingID:  bookingID,
		AmountPaid: 250.75,
	})

	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, result.Booking.Status)
	assert.Equal(t, payment.StatusCompleted, result.Payment.PaymentStatus)
	assert.True(t, fixedNow.Equal(result.Payment.PaymentDate))

	stored, _ := f.store.Booking(bookingID)
	assert.Equal(t, booking.StatusConfirmed, stored.Status)
	c, _ := f.store.Car(carID)
	assert.False(t, c.AvailabilityStatus)

	payments := f.store.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, bookingID, payments[0].BookingID)
	assert.Equal(t, 250.75, payments[0].AmountPaid)
	assert.Equal(t, result.Payment.ID, payments[0].ID)

	assert.Equal(t, 1, f.store.Commits)
	assert.Equal(t, 0, f.store.Rollbacks)
	assert.Equal(t, 1.0, f.outcomes(commands.OutcomeConfirmed))
}

func TestConfirm_BookingNotFound(t *testing.T) {
	f := newConfirmFixture()
	_, carID, bookingID := seedScenario(t, f.store)

	_, err := f.cmds.Confirm(context.Background(), adminCaller, reqdto.CreateTransactionRequest{
		BookingID:  bookingID + 100,
		AmountPaid: 10,
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.Empty(t, f.store.Payments())
	c, _ := f.store.Car(carID)
	assert.True(t, c.AvailabilityStatus)
	assert.Equal(t, 1, f.store.Rollbacks)
	assert.Equal(t, 1.0, f.outcomes(commands.OutcomeBookingNotFound))
}

func TestConfirm_CarUpdateFailureRollsBackBookingStatus(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(store *memuow.Store) int64
		wantCarErr bool
	}{
		{
			name: "car row missing",
			setup: func(store *memuow.Store) int64 {
				return store.SeedBooking(*builder.NewBookingBuilder().WithID(50).WithCarID(999).BuildStored())
			},
			wantCarErr: true,
		},
		{
			name: "car update fault",
			setup: func(store *memuow.Store) int64 {
				store.SetAvailabilityErr = infra.WrapRepoErr("failed to update car availability", assert.AnError)
				return 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newConfirmFixture()
			seedScenario(t, f.store)
			bookingID := tt.setup(f.store)
			before, _ := f.store.Booking(bookingID)

			_, err := f.cmds.Confirm(context.Background(), adminCaller, reqdto.CreateTransactionRequest{
				BookingID:  bookingID,
				AmountPaid: 99,
			})

			require.Error(t, err)
			assert.Equal(t, tt.wantCarErr, errs.Is(err, commands.ErrCarUpdateFailed))
			assert.False(t, errs.Is(err, errs.ErrNotFound), "workflow failures are server errors")

			after, _ := f.store.Booking(bookingID)
			assert.Equal(t, before, after)
			assert.Equal(t, booking.StatusPending, after.Status)
			assert.Empty(t, f.store.Payments())
			assert.Equal(t, 1, f.store.Rollbacks)
			assert.Equal(t, 0, f.store.Commits)
		})
	}
}

func TestConfirm_AlreadyConfirmed(t *testing.T) {
	f := newConfirmFixture()
	_, _, bookingID := seedScenario(t, f.store)
	req := reqdto.CreateTransactionRequest{BookingID: bookingID, AmountPaid: 250.75}

	_, err := f.cmds.Confirm(context.Background(), adminCaller, req)
	require.NoError(t, err)

	_, err = f.cmds.Confirm(context.Background(), customerCaller, req)

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrBookingAlreadyConfirmed))
	assert.True(t, errs.Is(err, errs.ErrConflict))
	assert.Len(t, f.store.Payments(), 1)
	assert.Equal(t, 1.0, f.outcomes(commands.OutcomeAlreadyConfirmed))
}

func TestConfirm_ValidationHappensBeforeTransaction(t *testing.T) {
	tests := []struct {
		name    string
		req     reqdto.CreateTransactionRequest
		wantErr error
	}{
		{name: "missing booking id", req: reqdto.CreateTransactionRequest{AmountPaid: 10}, wantErr: payment.ErrInvalidBooking},
		{name: "zero amount", req: reqdto.CreateTransactionRequest{BookingID: 1}, wantErr: payment.ErrInvalidAmount},
		{name: "negative amount", req: reqdto.CreateTransactionRequest{BookingID: 1, AmountPaid: -5}, wantErr: payment.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newConfirmFixture()
			seedScenario(t, f.store)

			_, err := f.cmds.Confirm(context.Background(), adminCaller, tt.req)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr))
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Zero(t, f.store.Commits+f.store.Rollbacks)
			assert.Equal(t, 1.0, f.outcomes(commands.OutcomeInvalid))
		})
	}
}

func TestConfirm_ConcurrentAttemptsCreateOnePayment(t *testing.T) {
	f := newConfirmFixture()
	_, _, bookingID := seedScenario(t, f.store)

	const attempts = 8
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = f.cmds.Confirm(context.Background(), adminCaller, reqdto.CreateTransactionRequest{
				BookingID:  bookingID,
				AmountPaid: 250.75,
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errs.Is(err, commands.ErrBookingAlreadyConfirmed))
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.store.Payments(), 1)
}
