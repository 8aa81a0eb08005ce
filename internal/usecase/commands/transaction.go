package commands

import (
	"context"
	"log/slog"

	"car-rental/internal/domain/booking"
	"car-rental/internal/domain/payment"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/shared"
)

const (
	OutcomeConfirmed        = "confirmed"
	OutcomeInvalid          = "invalid"
	OutcomeBookingNotFound  = "booking_not_found"
	OutcomeAlreadyConfirmed = "already_confirmed"
	OutcomeCarUpdateFailed  = "car_update_failed"
	OutcomeError            = "error"
)

type ConfirmationResult struct {
	Payment *payment.Payment
	Booking *booking.Booking
}

type TransactionCommands interface {
	// Confirm runs the booking confirmation workflow: lock the booking, confirm it,
	// take the car out of availability and record the payment, all in one transaction.
	Confirm(ctx context.Context, caller usecase.Caller, req reqdto.CreateTransactionRequest) (*ConfirmationResult, error)
}

type transactionCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	observer ConfirmationObserver
	logger   *slog.Logger
}

func NewTransactionCommands(uow shared.UnitOfWork, clk clock.Clock, observer ConfirmationObserver, logger *slog.Logger) TransactionCommands {
	return &transactionCommandsImpl{
		uow:      uow,
		clock:    clk,
		observer: observer,
		logger:   logger,
	}
}

func (t *transactionCommandsImpl) Confirm(ctx context.Context, caller usecase.Caller, req reqdto.CreateTransactionRequest) (*ConfirmationResult, error) {
	if req.BookingID <= 0 {
		t.observer.ObserveConfirmation(OutcomeInvalid)
		return nil, invalid(payment.ErrInvalidBooking)
	}
	if req.AmountPaid <= 0 {
		t.observer.ObserveConfirmation(OutcomeInvalid)
		return nil, invalid(payment.ErrInvalidAmount)
	}

	result, err := shared.WithinResult(ctx, t.uow, func(ctx context.Context, tx shared.Tx) (*ConfirmationResult, error) {
		return t.confirm(ctx, tx, req)
	})
	t.observer.ObserveConfirmation(confirmationOutcome(err))
	if err != nil {
		t.logger.Warn("booking confirmation rolled back",
			"booking_id", req.BookingID,
			"caller_id", caller.UserID,
			"error", err.Error())
		return nil, err
	}

	t.logger.Info("booking confirmed",
		"booking_id", result.Booking.ID,
		"car_id", result.Booking.CarID,
		"payment_id", result.Payment.ID,
		"caller_id", caller.UserID)
	return result, nil
}

func (t *transactionCommandsImpl) confirm(ctx context.Context, tx shared.Tx, req reqdto.CreateTransactionRequest) (*ConfirmationResult, error) {
	// The row lock makes a concurrent confirmation of the same booking wait here and then see it confirmed.
	b, err := tx.Bookings().FindByIDForUpdate(ctx, req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrBookingNotFound, err)
		}
		return nil, errs.Wrap(err, "lock booking")
	}
	if err := b.Confirm(); err != nil {
		return nil, ErrBookingAlreadyConfirmed
	}

	if err := tx.Bookings().UpdateStatus(ctx, b.ID, b.Status); err != nil {
		return nil, errs.Wrap(err, "confirm booking")
	}

	if err := tx.Cars().SetAvailability(ctx, b.CarID, false); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrCarUpdateFailed, err)
		}
		return nil, errs.Wrap(err, "mark car unavailable")
	}

	p, err := payment.NewCompletedPayment(b.ID, req.AmountPaid, t.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}
	id, err := tx.Payments().Create(ctx, p)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.WithCause(ErrBookingAlreadyConfirmed, err)
		}
		return nil, errs.Wrap(err, "record payment")
	}
	p.ID = id

	return &ConfirmationResult{Payment: p, Booking: b}, nil
}

func confirmationOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeConfirmed
	case errs.Is(err, ErrBookingNotFound):
		return OutcomeBookingNotFound
	case errs.Is(err, ErrBookingAlreadyConfirmed):
		return OutcomeAlreadyConfirmed
	case errs.Is(err, ErrCarUpdateFailed):
		return OutcomeCarUpdateFailed
	case errs.Is(err, errs.ErrValidation):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
