package wealth

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets an id that is not in
// the ledger.
var ErrNotFound = errors.New("not found")

// ErrInUse is returned by delete checks when another entity still
// references the target. The snapshot is left untouched.
var ErrInUse = errors.New("in use")

// ValidationError reports caller-supplied data failing a precondition.
// No state change happens when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// danglingRef builds the error for a foreign key that resolves to nothing.
func danglingRef(field, id string) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("unknown reference %q", id)}
}

// inUse builds an ErrInUse with the referencing detail.
func inUse(kind Kind, by string) error {
	return fmt.Errorf("%s referenced by %s: %w", kind, by, ErrInUse)
}
