//go:build unit || e2e

package builder

import (
	"time"

	"car-rental/internal/domain/booking"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/queries"
)

type BookingBuilder struct {
	ID        int64
	UserID    int64
	CarID     int64
	StartDate time.Time
	EndDate   time.Time
	TotalCost float64
	Status    booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        1,
		UserID:    1,
		CarID:     1,
		StartDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		TotalCost: 250.75,
		Status:    booking.StatusPending,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCarID(id int64) *BookingBuilder {
	b.CarID = id
	return b
}

func (b *BookingBuilder) WithUserID(id int64) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) Confirmed() *BookingBuilder {
	b.Status = booking.StatusConfirmed
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	window, err := booking.NewWindow(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.UserID, b.CarID, window, b.TotalCost)
}

func (b *BookingBuilder) BuildStored() *booking.Booking {
	return &booking.Booking{
		ID:        b.ID,
		UserID:    b.UserID,
		CarID:     b.CarID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		TotalCost: b.TotalCost,
		Status:    b.Status,
	}
}

func (b *BookingBuilder) BuildView() queries.BookingView {
	return queries.BookingView{
		ID:        b.ID,
		UserID:    b.UserID,
		CarID:     b.CarID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		TotalCost: b.TotalCost,
		Status:    string(b.Status),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		UserID:    b.UserID,
		CarID:     b.CarID,
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
		TotalCost: b.TotalCost,
	}
}
