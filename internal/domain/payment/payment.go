package payment

import (
	"errors"
	"time"
)

const StatusCompleted = "completed"

var (
	ErrInvalidBooking = errors.New("booking_id is required")
	ErrInvalidAmount  = errors.New("amount_paid must be positive")
)

// Payment is stored in the transactions table; it is written once per confirmed booking.
type Payment struct {
	ID            int64
	BookingID     int64
	AmountPaid    float64
	PaymentDate   time.Time
	PaymentStatus string
}

func NewCompletedPayment(bookingID int64, amountPaid float64, paidAt time.Time) (*Payment, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBooking
	}
	if amountPaid <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		BookingID:     bookingID,
		AmountPaid:    amountPaid,
		PaymentDate:   paidAt,
		PaymentStatus: StatusCompleted,
	}, nil
}
