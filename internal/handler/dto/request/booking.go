package request

import (
	"car-rental/internal/domain/booking"
)

type CreateBookingRequest struct {
	UserID    int64   `json:"user_id" binding:"required,gt=0"`
	CarID     int64   `json:"car_id" binding:"required,gt=0"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	TotalCost float64 `json:"total_cost" binding:"required,gt=0"`
}

func (r *CreateBookingRequest) ToDomain() (*booking.Booking, error) {
	window, err := parseWindow(r.StartDate, r.EndDate)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(r.UserID, r.CarID, window, r.TotalCost)
}

type UpdateBookingRequest struct {
	BookingID int64   `form:"booking_id" binding:"required,gt=0"`
	UserID    int64   `form:"user_id" binding:"required,gt=0"`
	CarID     int64   `form:"car_id" binding:"required,gt=0"`
	StartDate string  `form:"start_date" binding:"required"`
	EndDate   string  `form:"end_date" binding:"required"`
	TotalCost float64 `form:"total_cost" binding:"required,gt=0"`
}

// ToDomain builds the replacement row. Status is not part of an update.
func (r *UpdateBookingRequest) ToDomain() (*booking.Booking, error) {
	window, err := parseWindow(r.StartDate, r.EndDate)
	if err != nil {
		return nil, err
	}
	b, err := booking.NewBooking(r.UserID, r.CarID, window, r.TotalCost)
	if err != nil {
		return nil, err
	}
	b.ID = r.BookingID
	return b, nil
}

type DeleteBookingRequest struct {
	BookingID int64 `form:"booking_id" binding:"required,gt=0"`
}

func parseWindow(rawStart, rawEnd string) (booking.Window, error) {
	start, err := ParseDate(rawStart)
	if err != nil {
		return booking.Window{}, err
	}
	end, err := ParseDate(rawEnd)
	if err != nil {
		return booking.Window{}, err
	}
	return booking.NewWindow(start, end)
}
