package commands

import (
	"context"

	"car-rental/internal/domain/role"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/shared"
)

type RoleCommands interface {
	Create(ctx context.Context, caller usecase.Caller, req reqdto.CreateRoleRequest) (*role.Role, error)
	Update(ctx context.Context, caller usecase.Caller, req reqdto.UpdateRoleRequest) (*role.Role, error)
	Delete(ctx context.Context, caller usecase.Caller, req reqdto.DeleteRoleRequest) error
}

type roleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoleCommands(uow shared.UnitOfWork) RoleCommands {
	return &roleCommandsImpl{uow: uow}
}

func (r *roleCommandsImpl) Create(ctx context.Context, caller usecase.Caller, req reqdto.CreateRoleRequest) (*role.Role, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	newRole, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	id, err := shared.WithDBResult(ctx, r.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Roles().Create(ctx, newRole)
	})
	if err != nil {
		return nil, mapRoleWriteErr(err)
	}
	newRole.ID = id
	return newRole, nil
}

func (r *roleCommandsImpl) Update(ctx context.Context, caller usecase.Caller, req reqdto.UpdateRoleRequest) (*role.Role, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	updated, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	err = r.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Roles().Update(ctx, updated)
	})
	if err != nil {
		return nil, mapRoleWriteErr(err)
	}
	return updated, nil
}

func (r *roleCommandsImpl) Delete(ctx context.Context, caller usecase.Caller, req reqdto.DeleteRoleRequest) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}

	err := r.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Roles().Delete(ctx, req.RoleID)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(ErrRoleInUse, err)
	default:
		return mapRoleWriteErr(err)
	}
}

func mapRoleWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.WithCause(ErrRoleNotFound, err)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.WithCause(ErrRoleExists, err)
	default:
		return errs.Wrap(err, "role write")
	}
}
