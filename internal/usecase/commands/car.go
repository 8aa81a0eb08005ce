package commands

import (
	"context"

	"car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/shared"
)

type CarCommands interface {
	Create(ctx context.Context, caller usecase.Caller, req reqdto.CreateCarRequest) (*car.Car, error)
	Update(ctx context.Context, caller usecase.Caller, req reqdto.UpdateCarRequest) (*car.Car, error)
	Delete(ctx context.Context, caller usecase.Caller, req reqdto.DeleteCarRequest) error
}

type carCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCarCommands(uow shared.UnitOfWork) CarCommands {
	return &carCommandsImpl{uow: uow}
}

func (c *carCommandsImpl) Create(ctx context.Context, caller usecase.Caller, req reqdto.CreateCarRequest) (*car.Car, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	newCar, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	id, err := shared.WithDBResult(ctx, c.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Cars().Create(ctx, newCar)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create car")
	}
	newCar.ID = id
	return newCar, nil
}

func (c *carCommandsImpl) Update(ctx context.Context, caller usecase.Caller, req reqdto.UpdateCarRequest) (*car.Car, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	updated, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Cars().Update(ctx, updated)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrCarNotFound, err)
		}
		return nil, errs.Wrap(err, "update car")
	}
	return updated, nil
}

func (c *carCommandsImpl) Delete(ctx context.Context, caller usecase.Caller, req reqdto.DeleteCarRequest) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}

	err := c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Cars().Delete(ctx, req.CarID)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.WithCause(ErrCarNotFound, err)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(ErrCarInUse, err)
	default:
		return errs.Wrap(err, "delete car")
	}
}
