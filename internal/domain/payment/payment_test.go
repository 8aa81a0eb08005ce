//go:build unit

package payment_test

import (
	"testing"
	"time"

	"car-rental/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletedPayment(t *testing.T) {
	paidAt := time.Date(2024, 11, 30, 12, 0, 0, 0, time.UTC)

	p, err := payment.NewCompletedPayment(1, 250.75, paidAt)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, p.PaymentStatus)
	assert.Equal(t, paidAt, p.PaymentDate)

	_, err = payment.NewCompletedPayment(0, 10, paidAt)
	assert.ErrorIs(t, err, payment.ErrInvalidBooking)

	_, err = payment.NewCompletedPayment(1, 0, paidAt)
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)
}
