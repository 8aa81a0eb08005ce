package request

type CreateTransactionRequest struct {
	BookingID  int64   `json:"booking_id" binding:"required,gt=0"`
	AmountPaid float64 `json:"amount_paid" binding:"required,gt=0"`
}
