package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrGatewayNotConfigured = errors.New("payment gateway credentials are not set")
	ErrGatewayAuth          = errors.New("payment gateway rejected the credentials")
	ErrGatewayBadRequest    = errors.New("payment gateway rejected the parameters")
	ErrSignatureMismatch    = errors.New("payment signature verification failed")
	ErrAmountMismatch       = errors.New("order amount does not match the charged amount")
)

// ValidationError marks request-shaped problems that must map to a 400 with
// no side effects.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
