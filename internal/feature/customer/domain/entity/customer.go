package entity

// Customer is a renter on file. Email is unique across customers.
type Customer struct {
	ID          uint   `gorm:"column:customer_id;primaryKey"`
	FirstName   string `gorm:"size:50;not null"`
	LastName    string `gorm:"size:50;not null"`
	Email       string `gorm:"size:100;uniqueIndex;not null"`
	PhoneNumber string `gorm:"size:15"`
	Address     string `gorm:"size:255"`
}

// TableName maps Customer to the singular "customer" table.
func (Customer) TableName() string { return "customer" }
