package domain

import "errors"

// Failure taxonomy for the processing engines. Callers match with
// errors.Is; engines wrap these with entity context.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrAlreadyReturned    = errors.New("item already returned")
	ErrNoRentalFound      = errors.New("no rental found for return items")
	ErrCrossRentalReturn  = errors.New("return lines span multiple rentals")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
