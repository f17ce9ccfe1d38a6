package skill

import "fmt"

// ValidationError indicates a required field was empty on create or edit.
// It is rejected before anything reaches the store.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("skill %s must not be empty", e.Field)
}
