package commands

import (
	"car-rental/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.Define("invalid username or password", errs.ErrValidation)
	ErrTokenGeneration    = errs.New("token generation failed")

	ErrRoleNotFound = errs.Define("role not found", errs.ErrNotFound)
	ErrRoleExists   = errs.Define("role name already exists", errs.ErrConflict)
	ErrRoleInUse    = errs.Define("role is still assigned to users", errs.ErrConflict)

	ErrUserNotFound        = errs.Define("user not found", errs.ErrNotFound)
	ErrOldPasswordMismatch = errs.Define("old password is incorrect", errs.ErrNotFound)
	ErrUserExists          = errs.Define("username or email already exists", errs.ErrConflict)
	ErrUserInUse           = errs.Define("user still has bookings", errs.ErrConflict)

	ErrCarNotFound = errs.Define("car not found", errs.ErrNotFound)
	ErrCarInUse    = errs.Define("car still has bookings", errs.ErrConflict)

	ErrBookingNotFound          = errs.Define("booking not found", errs.ErrNotFound)
	ErrBookingReferenceNotFound = errs.Define("user or car not found", errs.ErrNotFound)
	ErrBookingAlreadyConfirmed  = errs.Define("booking is already confirmed", errs.ErrConflict)
	ErrBookingOutOfRange        = errs.Define("booking values are out of range", errs.ErrValidation)

	// ErrCarUpdateFailed aborts a confirmation after the booking row was already changed.
	ErrCarUpdateFailed = errs.New("car not found or availability update failed")
)

// invalid tags a domain validation failure so it is reported as a client error with its own message.
func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}
