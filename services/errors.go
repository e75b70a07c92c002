package services

import "errors"

// Sentinel errors mapped to HTTP statuses in the controllers.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrConflict           = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrNotDeliveryCrew    = errors.New("user is not in the delivery crew")
)
