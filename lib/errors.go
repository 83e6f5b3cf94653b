package lib

import (
	"errors"
	"fmt"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoMembership       = errors.New("no active establishment membership")
)

// Order lifecycle errors
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// PartialCheckoutError marks a checkout whose order row was written but whose
// item rows failed. The surrounding transaction rolls everything back, so the
// order is never visible with a wrong item set; the type exists so the
// failure mode stays observable and testable.
type PartialCheckoutError struct {
	OrderId string
	Err     error
}

func (e *PartialCheckoutError) Error() string {
	return fmt.Sprintf("checkout rolled back, order items failed to persist (order %s): %v", e.OrderId, e.Err)
}

func (e *PartialCheckoutError) Unwrap() error {
	return e.Err
}

// MapPgError maps driver-level SQLSTATE errors to the sentinel errors above.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict)
}

// GetDetailForLogging keeps log lines short when errors wrap long driver
// diagnostics.
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > 200 {
		return msg[:200]
	}
	return msg
}
