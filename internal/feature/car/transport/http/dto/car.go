// Package dto defines the JSON shapes of the car endpoints.
package dto

// CreateCarReq is the body of POST /cars. Availability defaults to true.
type CreateCarReq struct {
	CarModel     string  `json:"carModel" binding:"required,max=100"`
	Year         int     `json:"year" binding:"required,gte=1900,lte=2100"`
	Color        string  `json:"color" binding:"max=30"`
	RentalRate   float64 `json:"rentalRate" binding:"required,gt=0"`
	Availability *bool   `json:"availability"`
	LocationID   *uint   `json:"locationID"`
}

// UpdateCarReq is the body of PUT /cars/:id. Absent fields are kept.
type UpdateCarReq struct {
	CarModel     *string  `json:"carModel" binding:"omitempty,max=100"`
	Year         *int     `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	Color        *string  `json:"color" binding:"omitempty,max=30"`
	RentalRate   *float64 `json:"rentalRate" binding:"omitempty,gt=0"`
	Availability *bool    `json:"availability"`
	LocationID   *uint    `json:"locationID"`
}

// CarRes is the public view of a car.
type CarRes struct {
	CarID        uint    `json:"carID"`
	CarModel     string  `json:"carModel"`
	Year         int     `json:"year"`
	Color        string  `json:"color"`
	RentalRate   float64 `json:"rentalRate"`
	Availability bool    `json:"availability"`
	LocationID   *uint   `json:"locationID"`
}
