package queries

import "time"

// RoleView represents read-optimized role data
type RoleView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserView never carries the password hash.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name"`
}

// UserCredentials is the login lookup result.
type UserCredentials struct {
	User         UserView
	PasswordHash string
}

type CarView struct {
	ID                 int64   `json:"id"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	PricePerDay        float64 `json:"price_per_day"`
	AvailabilityStatus bool    `json:"availability_status"`
}

type BookingView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CarID     int64     `json:"car_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TotalCost float64   `json:"total_cost"`
	Status    string    `json:"status"`
}

type TransactionView struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"booking_id"`
	AmountPaid    float64   `json:"amount_paid"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentStatus string    `json:"payment_status"`
}
