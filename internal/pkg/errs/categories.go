package errs

// Categories shared by the usecase sentinels; the HTTP layer maps these to statuses.
var (
	ErrValidation   = New("validation failed")
	ErrNotFound     = New("not found")
	ErrConflict     = New("conflict")
	ErrForbidden    = New("forbidden")
	ErrUnauthorized = New("unauthorized")
)
