package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrCartNotFound indicates the referenced cart does not exist.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartLineNotFound indicates no cart line matches the requested product.
	ErrCartLineNotFound = errors.New("cart line not found")
	// ErrInvalidInput marks request validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// Invalid wraps a validation message in ErrInvalidInput so transports can
// map it to a client error.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
