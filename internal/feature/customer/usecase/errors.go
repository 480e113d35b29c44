package usecase

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailTaken       = errors.New("customer email already exists")
)
