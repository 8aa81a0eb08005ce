package shared

import (
	"context"
	"time"

	"car-rental/internal/domain/booking"
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/role"
	"car-rental/internal/domain/user"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one connection or transaction.
type Tx interface {
	Roles() RoleRepository
	Users() UserRepository
	Cars() CarRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
}

type RoleRepository interface {
	Create(ctx context.Context, r *role.Role) (int64, error)
	Update(ctx context.Context, r *role.Role) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id int64) error
}

type CarRepository interface {
	Create(ctx context.Context, c *car.Car) (int64, error)
	Update(ctx context.Context, c *car.Car) error
	Delete(ctx context.Context, id int64) error
	// SetAvailability returns a NOT_FOUND repository error when no row was updated.
	SetAvailability(ctx context.Context, id int64, available bool) error
	// ReleaseIfIdle marks the car available unless a confirmed booking ending at or after now still holds it.
	ReleaseIfIdle(ctx context.Context, id int64, now time.Time) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id int64) error
	// FindByIDForUpdate takes a row lock held until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) error
	// ExpiredCarIDs returns the distinct cars referenced by bookings with end_date strictly before now.
	ExpiredCarIDs(ctx context.Context, now time.Time) ([]int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (int64, error)
}
