package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/pkg/password"
	"car-rental/internal/usecase/queries"
)

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	credentials CredentialStore
	hasher      PasswordHasher
	tokens      TokenIssuer
}

func NewAuthCommands(credentials CredentialStore, hasher PasswordHasher, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	stored, err := a.credentials.FindCredentialsByUsername(ctx, creds.Username().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "load credentials")
	}

	if err := a.hasher.Compare(stored.PasswordHash, creds.Password()); err != nil {
		if !errs.Is(err, password.ErrComparisonFailed) {
			slog.Warn("password comparison error", "user_id", stored.User.ID, "error", err.Error())
		}
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(jwt.UserData{
		ID:       stored.User.ID,
		Username: stored.User.Username,
		Email:    stored.User.Email,
		RoleID:   stored.User.RoleID,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
		User:        stored.User,
	}, nil
}
