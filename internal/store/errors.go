package store

import (
	"errors"
	"fmt"
)

// ErrValidation marks user-correctable input problems (empty title, rating
// out of range). Callers surface the message and abort the save; no partial
// write happens. Lookups that miss are never errors; they degrade to no-ops
// or placeholder records instead.
var ErrValidation = errors.New("validation failed")

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
