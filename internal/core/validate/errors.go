package validate

import (
	"errors"
	"fmt"
)

// Error is a validation failure. The message names the offending value
// and the expected format so it can be shown to the user as-is.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// Errorf builds a validation Error from a format string.
func Errorf(format string, args ...any) error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var v *Error
	return errors.As(err, &v)
}
