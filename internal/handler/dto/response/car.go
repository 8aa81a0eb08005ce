package response

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/usecase/queries"
)

type CarResponse struct {
	ID                 int64   `json:"id"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	PricePerDay        float64 `json:"price_per_day"`
	AvailabilityStatus bool    `json:"availability_status"`
}

func FromCar(c *car.Car) CarResponse {
	return copyTo[CarResponse](c)
}

func FromCarViews(views []queries.CarView) []CarResponse {
	return copyList[CarResponse](views)
}
