// Package dto defines the JSON shapes of the customer endpoints.
package dto

// CreateCustomerReq is the body of POST /customer.
type CreateCustomerReq struct {
	FirstName   string `json:"firstName" binding:"required,max=50"`
	LastName    string `json:"lastName" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"max=15"`
	Address     string `json:"address" binding:"max=255"`
}

// UpdateCustomerReq is the body of PUT /customer/:id. Absent fields are kept.
type UpdateCustomerReq struct {
	FirstName   *string `json:"firstName" binding:"omitempty,max=50"`
	LastName    *string `json:"lastName" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=15"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
}

// CustomerRes is the public view of a customer.
type CustomerRes struct {
	CustomerID  uint   `json:"customerID"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}
