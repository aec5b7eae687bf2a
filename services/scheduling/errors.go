package scheduling

import (
	"errors"
	"fmt"
)

// BookingError distinguishes validation failures from upstream ones.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{
		Code:    "validationError",
		Message: msg,
	}
}

// IsValidationError reports whether err is a request validation failure.
func IsValidationError(err error) bool {
	var be *BookingError
	return errors.As(err, &be) && be.Code == "validationError"
}
