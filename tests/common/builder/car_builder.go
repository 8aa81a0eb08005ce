//go:build unit || e2e

package builder

import (
	"car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/queries"
)

type CarBuilder struct {
	ID          int64
	Make        string
	Model       string
	Year        int
	PricePerDay float64
	Available   bool
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:          1,
		Make:        "Toyota",
		Model:       "Corolla",
		Year:        2023,
		PricePerDay: 50.5,
		Available:   true,
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *CarBuilder) WithID(id int64) *CarBuilder {
	b.ID = id
	return b
}

func (b *CarBuilder) Unavailable() *CarBuilder {
	b.Available = false
	return b
}

func (b *CarBuilder) BuildDomain() (*car.Car, error) {
	return car.NewCar(b.Make, b.Model, b.Year, b.PricePerDay)
}

func (b *CarBuilder) BuildStored() *car.Car {
	return &car.Car{
		ID:                 b.ID,
		Make:               b.Make,
		Model:              b.Model,
		Year:               b.Year,
		PricePerDay:        b.PricePerDay,
		AvailabilityStatus: b.Available,
	}
}

func (b *CarBuilder) BuildView() queries.CarView {
	return queries.CarView{
		ID:                 b.ID,
		Make:               b.Make,
		Model:              b.Model,
		Year:               b.Year,
		PricePerDay:        b.PricePerDay,
		AvailabilityStatus: b.Available,
	}
}

func (b *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Make:        b.Make,
		Model:       b.Model,
		Year:        b.Year,
		PricePerDay: b.PricePerDay,
	}
}
