package commands

import (
	"context"

	"car-rental/internal/domain/booking"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"
)

// BookingCommands is open to any authenticated caller.
type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (*booking.Booking, error)
	Update(ctx context.Context, req reqdto.UpdateBookingRequest) (*booking.Booking, error)
	Delete(ctx context.Context, req reqdto.DeleteBookingRequest) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (*booking.Booking, error) {
	newBooking, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	id, err := shared.WithDBResult(ctx, b.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Bookings().Create(ctx, newBooking)
	})
	if err != nil {
		return nil, mapBookingWriteErr(err)
	}
	newBooking.ID = id
	return newBooking, nil
}

// Update replaces the booking fields. For a confirmed booking the old car is
// released unless another live confirmation holds it, and the new car is taken
// out of availability while the new window has not elapsed.
func (b *bookingCommandsImpl) Update(ctx context.Context, req reqdto.UpdateBookingRequest) (*booking.Booking, error) {
	updated, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByIDForUpdate(ctx, updated.ID)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, updated); err != nil {
			return err
		}
		if !current.IsConfirmed() {
			return nil
		}

		now := b.clock.Now()
		if _, err := tx.Cars().ReleaseIfIdle(ctx, current.CarID, now); err != nil {
			return errs.Wrap(err, "release previous car")
		}
		if updated.EndDate.Before(now) {
			return nil
		}
		if err := tx.Cars().SetAvailability(ctx, updated.CarID, false); err != nil {
			return errs.WithCause(ErrCarUpdateFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, mapBookingWriteErr(err)
	}
	return updated, nil
}

// Delete removes the booking; its payment row goes with it. Deleting a confirmed
// booking gives its car back unless another live confirmation holds it.
func (b *bookingCommandsImpl) Delete(ctx context.Context, req reqdto.DeleteBookingRequest) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByIDForUpdate(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Delete(ctx, current.ID); err != nil {
			return err
		}
		if !current.IsConfirmed() {
			return nil
		}
		if _, err := tx.Cars().ReleaseIfIdle(ctx, current.CarID, b.clock.Now()); err != nil {
			return errs.Wrap(err, "release car")
		}
		return nil
	})
	if err != nil {
		return mapBookingWriteErr(err)
	}
	return nil
}

func mapBookingWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.WithCause(ErrBookingNotFound, err)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(ErrBookingReferenceNotFound, err)
	case infra.IsKind(err, infra.KindConstraintViolated):
		if infra.ConstraintName(err) == "bookings_window_check" {
			return errs.WithCause(invalid(booking.ErrInvalidWindow), err)
		}
		return errs.WithCause(ErrBookingOutOfRange, err)
	default:
		return errs.Wrap(err, "booking write")
	}
}
