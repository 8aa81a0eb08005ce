package response

import (
	"time"

	"car-rental/internal/domain/booking"
	"car-rental/internal/usecase/queries"
)

type BookingResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CarID     int64     `json:"car_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TotalCost float64   `json:"total_cost"`
	Status    string    `json:"status"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	return copyTo[BookingResponse](b)
}

func FromBookingViews(views []queries.BookingView) []BookingResponse {
	return copyList[BookingResponse](views)
}
