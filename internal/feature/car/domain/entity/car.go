package entity

// Car is a vehicle in the rental fleet.
type Car struct {
	ID           uint    `gorm:"column:car_id;primaryKey"`
	CarModel     string  `gorm:"size:100;not null"`
	Year         int     `gorm:"not null"`
	Color        string  `gorm:"size:30"`
	RentalRate   float64 `gorm:"type:decimal(10,2);not null"`
	Availability bool    `gorm:"not null"`
	LocationID   *uint
}

// TableName maps Car to the singular "car" table.
func (Car) TableName() string { return "car" }
