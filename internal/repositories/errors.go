package repositories

import "errors"

var (
	// ErrNotFound is returned when no record matches the given identifier
	// or filter.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when a sale would drive a product's
	// quantity below zero. The stored quantity is left untouched.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned for a zero, negative or non-numeric
	// quantity delta.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrDuplicateEmail is returned when creating a user whose email is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
