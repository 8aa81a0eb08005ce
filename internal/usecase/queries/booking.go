package queries

import (
	"context"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
)

type BookingQueries interface {
	// List returns every booking for admins and the caller's own bookings otherwise.
	List(ctx context.Context, caller usecase.Caller) ([]BookingView, error)
}

type BookingReadStore interface {
	List(ctx context.Context) ([]BookingView, error)
	ListByUser(ctx context.Context, userID int64) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) List(ctx context.Context, caller usecase.Caller) ([]BookingView, error) {
	var (
		bookings []BookingView
		err      error
	)
	if caller.IsAdmin {
		bookings, err = q.readStore.List(ctx)
	} else {
		bookings, err = q.readStore.ListByUser(ctx, caller.UserID)
	}
	if err != nil {
		return nil, errs.Wrap(err, "list bookings")
	}
	return bookings, nil
}
