package commands

import (
	"context"

	"car-rental/internal/domain/user"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/password"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/shared"
)

type UserCommands interface {
	Create(ctx context.Context, caller usecase.Caller, req reqdto.CreateUserRequest) (*user.User, error)
	Update(ctx context.Context, caller usecase.Caller, req reqdto.UpdateUserRequest) (*user.User, error)
	Delete(ctx context.Context, caller usecase.Caller, req reqdto.DeleteUserRequest) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
}

func NewUserCommands(uow shared.UnitOfWork, hasher PasswordHasher) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher}
}

func (u *userCommandsImpl) Create(ctx context.Context, caller usecase.Caller, req reqdto.CreateUserRequest) (*user.User, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	hash, err := u.hash(req.Password)
	if err != nil {
		return nil, err
	}
	newUser, err := req.ToDomain(hash)
	if err != nil {
		return nil, invalid(err)
	}

	id, err := shared.WithDBResult(ctx, u.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Users().Create(ctx, newUser)
	})
	if err != nil {
		return nil, mapUserWriteErr(err)
	}
	newUser.SetID(id)
	return newUser, nil
}

// Update replaces the profile after the stored password matches req.OldPassword.
func (u *userCommandsImpl) Update(ctx context.Context, caller usecase.Caller, req reqdto.UpdateUserRequest) (*user.User, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	username, email, err := req.Profile()
	if err != nil {
		return nil, invalid(err)
	}
	if req.OldPassword == "" {
		return nil, invalid(user.ErrEmptyPassword)
	}
	newHash, err := u.hash(req.NewPassword)
	if err != nil {
		return nil, err
	}

	return shared.WithinResult(ctx, u.uow, func(ctx context.Context, tx shared.Tx) (*user.User, error) {
		existing, err := tx.Users().FindByID(ctx, req.UserID)
		if err != nil {
			return nil, mapUserWriteErr(err)
		}
		if err := u.hasher.Compare(existing.PasswordHash(), req.OldPassword); err != nil {
			if errs.Is(err, password.ErrComparisonFailed) {
				return nil, ErrOldPasswordMismatch
			}
			return nil, errs.Wrap(err, "verify old password")
		}
		if err := existing.ChangeProfile(username, email, newHash, req.RoleID); err != nil {
			return nil, invalid(err)
		}
		if err := tx.Users().Update(ctx, existing); err != nil {
			return nil, mapUserWriteErr(err)
		}
		return existing, nil
	})
}

func (u *userCommandsImpl) Delete(ctx context.Context, caller usecase.Caller, req reqdto.DeleteUserRequest) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}

	err := u.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, req.UserID)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(ErrUserInUse, err)
	default:
		return mapUserWriteErr(err)
	}
}

func (u *userCommandsImpl) hash(plain string) (string, error) {
	hash, err := u.hasher.Hash(plain)
	if err != nil {
		if errs.Is(err, password.ErrInvalidPassword) {
			return "", invalid(user.ErrEmptyPassword)
		}
		return "", errs.Wrap(err, "hash password")
	}
	return hash, nil
}

// On insert or update a foreign key failure can only mean role_id does not exist.
func mapUserWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.WithCause(ErrUserNotFound, err)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.WithCause(ErrUserExists, err)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(ErrRoleNotFound, err)
	default:
		return errs.Wrap(err, "user write")
	}
}
