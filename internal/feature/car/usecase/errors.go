package usecase

import "errors"

// ErrCarNotFound is returned for an id with no car row.
var ErrCarNotFound = errors.New("car not found")
