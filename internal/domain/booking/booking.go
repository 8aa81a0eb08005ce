package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidUser      = errors.New("user_id is required")
	ErrInvalidCar       = errors.New("car_id is required")
	ErrInvalidWindow    = errors.New("end_date must be after start_date")
	ErrInvalidTotalCost = errors.New("total_cost must be positive")
	ErrAlreadyConfirmed = errors.New("booking is already confirmed")
)

// Window is the half-open interval [Start, End) a car is reserved for.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// Elapsed reports whether the window ended strictly before now.
func (w Window) Elapsed(now time.Time) bool {
	return w.End.Before(now)
}

type Booking struct {
	ID        int64
	UserID    int64
	CarID     int64
	StartDate time.Time
	EndDate   time.Time
	TotalCost float64
	Status    Status
}

// NewBooking creates a pending booking.
func NewBooking(userID, carID int64, window Window, totalCost float64) (*Booking, error) {
	b := &Booking{
		UserID:    userID,
		CarID:     carID,
		StartDate: window.Start,
		EndDate:   window.End,
		TotalCost: totalCost,
		Status:    StatusPending,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Booking) Validate() error {
	switch {
	case b.UserID <= 0:
		return ErrInvalidUser
	case b.CarID <= 0:
		return ErrInvalidCar
	case b.TotalCost <= 0:
		return ErrInvalidTotalCost
	}
	_, err := NewWindow(b.StartDate, b.EndDate)
	return err
}

func (b *Booking) Window() Window {
	return Window{Start: b.StartDate, End: b.EndDate}
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Confirm moves a pending booking to confirmed. Confirmation happens once.
func (b *Booking) Confirm() error {
	if b.IsConfirmed() {
		return ErrAlreadyConfirmed
	}
	b.Status = StatusConfirmed
	return nil
}
