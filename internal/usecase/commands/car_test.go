//go:build unit

package commands_test

import (
	"context"
	"testing"

	"car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/commands"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/memuow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarCommands_Create(t *testing.T) {
	t.Run("new car is available", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewCarCommands(store)

		created, err := cmds.Create(context.Background(), adminCaller, builder.NewCarBuilder().BuildCreateRequestDTO())

		require.NoError(t, err)
		assert.True(t, created.AvailabilityStatus)
		stored, ok := store.Car(created.ID)
		require.True(t, ok)
		assert.Equal(t, 50.5, stored.PricePerDay)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		cmds := commands.NewCarCommands(memuow.New())

		_, err := cmds.Create(context.Background(), customerCaller, builder.NewCarBuilder().BuildCreateRequestDTO())

		assert.True(t, errs.Is(err, usecase.ErrForbidden))
	})

	t.Run("invalid year is a validation error", func(t *testing.T) {
		cmds := commands.NewCarCommands(memuow.New())
		req := builder.NewCarBuilder().BuildCreateRequestDTO()
		req.Year = 12

		_, err := cmds.Create(context.Background(), adminCaller, req)

		assert.True(t, errs.Is(err, car.ErrInvalidYear))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestCarCommands_UpdateKeepsAvailability(t *testing.T) {
	store := memuow.New()
	carID := store.SeedCar(*builder.NewCarBuilder().Unavailable().BuildStored())
	cmds := commands.NewCarCommands(store)

	updated, err := cmds.Update(context.Background(), adminCaller, reqdto.UpdateCarRequest{
		CarID: carID, Make: "Honda", Model: "Civic", Year: 2021, PricePerDay: 42,
	})

	require.NoError(t, err)
	assert.False(t, updated.AvailabilityStatus)
	stored, _ := store.Car(carID)
	assert.Equal(t, "Honda", stored.Make)
	assert.False(t, stored.AvailabilityStatus)
}

func TestCarCommands_UpdateMissingCar(t *testing.T) {
	cmds := commands.NewCarCommands(memuow.New())

	_, err := cmds.Update(context.Background(), adminCaller, reqdto.UpdateCarRequest{
		CarID: 5, Make: "Honda", Model: "Civic", Year: 2021, PricePerDay: 42,
	})

	assert.True(t, errs.Is(err, commands.ErrCarNotFound))
}

func TestCarCommands_Delete(t *testing.T) {
	t.Run("booked car conflicts", func(t *testing.T) {
		store := memuow.New()
		_, carID, _ := seedScenario(t, store)
		cmds := commands.NewCarCommands(store)

		err := cmds.Delete(context.Background(), adminCaller, reqdto.DeleteCarRequest{CarID: carID})

		assert.True(t, errs.Is(err, commands.ErrCarInUse))
	})

	t.Run("free car is deleted", func(t *testing.T) {
		store := memuow.New()
		carID := store.SeedCar(*builder.NewCarBuilder().BuildStored())
		cmds := commands.NewCarCommands(store)

		require.NoError(t, cmds.Delete(context.Background(), adminCaller, reqdto.DeleteCarRequest{CarID: carID}))

		_, ok := store.Car(carID)
		assert.False(t, ok)
	})
}
