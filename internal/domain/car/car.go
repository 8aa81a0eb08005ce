package car

import (
	"errors"
	"strings"
)

const minYear = 1886

var (
	ErrEmptyMake        = errors.New("make is required")
	ErrEmptyModel       = errors.New("model is required")
	ErrInvalidYear      = errors.New("year is out of range")
	ErrInvalidDailyRate = errors.New("price_per_day must be positive")
)

type Car struct {
	ID                 int64
	Make               string
	Model              string
	Year               int
	PricePerDay        float64
	AvailabilityStatus bool
}

// NewCar builds a car that is available for booking.
func NewCar(maker, model string, year int, pricePerDay float64) (*Car, error) {
	c := &Car{
		Make:               strings.TrimSpace(maker),
		Model:              strings.TrimSpace(model),
		Year:               year,
		PricePerDay:        pricePerDay,
		AvailabilityStatus: true,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Car) Validate() error {
	switch {
	case c.Make == "":
		return ErrEmptyMake
	case c.Model == "":
		return ErrEmptyModel
	case c.Year < minYear || c.Year > 9999:
		return ErrInvalidYear
	case c.PricePerDay <= 0:
		return ErrInvalidDailyRate
	}
	return nil
}
