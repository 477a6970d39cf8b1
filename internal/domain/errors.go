package domain

import "fmt"

// ValidationError reports an entity field that failed domain validation.
// It is surfaced to the caller, never auto-corrected.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}
