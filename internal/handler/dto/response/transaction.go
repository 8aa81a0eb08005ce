package response

import (
	"time"

	"car-rental/internal/domain/payment"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
)

type TransactionResponse struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"booking_id"`
	AmountPaid    float64   `json:"amount_paid"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentStatus string    `json:"payment_status"`
}

type ConfirmationResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Booking     BookingResponse     `json:"booking"`
}

func FromPayment(p *payment.Payment) TransactionResponse {
	return copyTo[TransactionResponse](p)
}

func FromConfirmation(r *commands.ConfirmationResult) ConfirmationResponse {
	return ConfirmationResponse{
		Transaction: FromPayment(r.Payment),
		Booking:     FromBooking(r.Booking),
	}
}

func FromTransactionViews(views []queries.TransactionView) []TransactionResponse {
	return copyList[TransactionResponse](views)
}
