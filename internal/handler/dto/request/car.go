package request

import (
	"car-rental/internal/domain/car"
)

type CreateCarRequest struct {
	Make        string  `json:"make" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gt=0"`
}

func (r *CreateCarRequest) ToDomain() (*car.Car, error) {
	return car.NewCar(r.Make, r.Model, r.Year, r.PricePerDay)
}

type UpdateCarRequest struct {
	CarID       int64   `form:"car_id" binding:"required,gt=0"`
	Make        string  `form:"make" binding:"required"`
	Model       string  `form:"model" binding:"required"`
	Year        int     `form:"year" binding:"required"`
	PricePerDay float64 `form:"price_per_day" binding:"required,gt=0"`
}

// ToDomain leaves availability untouched; only the workflow and the sweep move it.
func (r *UpdateCarRequest) ToDomain() (*car.Car, error) {
	c, err := car.NewCar(r.Make, r.Model, r.Year, r.PricePerDay)
	if err != nil {
		return nil, err
	}
	c.ID = r.CarID
	return c, nil
}

type DeleteCarRequest struct {
	CarID int64 `form:"car_id" binding:"required,gt=0"`
}
