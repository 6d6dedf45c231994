package property

import (
	"errors"
	"fmt"
)

// ErrIncompatibleType is returned when a type-erased value cannot be
// converted to a container's native type. The container is left unchanged.
var ErrIncompatibleType = errors.New("incompatible type")

// ValidationError is returned when a group validator rejects a new value.
// The container's previous value has already been restored by the time the
// caller sees this error.
type ValidationError struct {
	Name string // machine key of the rejected container
	Err  error  // the validator's reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("property '%s': validation failed: %v", e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func incompatibleKind(want, got Kind) error {
	return fmt.Errorf("%w: want %s, got %s", ErrIncompatibleType, want, got)
}
