package domain

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrTicketNotFound = errors.New("ticket not found")
	ErrUserNotFound   = errors.New("user not found")
)

var (
	ErrCapacityExceeded = errors.New("not enough seats available")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	// ErrStorageConflict is a concurrent-update conflict detected by the
	// storage layer; retried once by the caller, then surfaced.
	ErrStorageConflict = errors.New("storage conflict")

	ErrPaymentUnavailable = errors.New("payment gateway is not configured")

	ErrVerificationMismatch = errors.New("verification token does not match")
)

var (
	ErrValidation = errors.New("validation error")
)
