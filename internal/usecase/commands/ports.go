package commands

import (
	"context"
	"time"

	"car-rental/internal/pkg/jwt"
	"car-rental/internal/usecase/queries"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type TokenIssuer interface {
	GenerateToken(data jwt.UserData) (string, error)
	TokenDuration() time.Duration
}

type CredentialStore interface {
	FindCredentialsByUsername(ctx context.Context, username string) (*queries.UserCredentials, error)
}

type ConfirmationObserver interface {
	ObserveConfirmation(outcome string)
}
