package record

import (
	"errors"
	"fmt"
)

// BindingError reports call arguments that do not match the declared
// signature. It is raised before the callee runs, so a binding failure
// never invokes the function and never writes a row.
type BindingError struct {
	Table string
	Want  int
	Got   int
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("bind call for %s: got %d arguments, signature declares %d parameters",
		e.Table, e.Got, e.Want)
}

// MissingFieldError reports a result value that does not expose a
// declared return field. The result must be a struct (or pointer to
// one) carrying every field the signature declares.
type MissingFieldError struct {
	Field  string
	Reason string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("result field %q: %s", e.Field, e.Reason)
}

// IsBindingError returns true if the error is a binding mismatch.
// Uses errors.As to handle wrapped errors.
func IsBindingError(err error) bool {
	var be *BindingError
	return errors.As(err, &be)
}
