// Package manifest builds and validates Manifest V3 descriptors from feature sets.
package manifest

import "fmt"

// ValidationError represents a manifest that references data outside the
// recognized vocabulary. Inputs are internally produced, so this surfaces a
// logic bug in the analyzer/builder pairing rather than a user error.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("manifest validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("manifest validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
