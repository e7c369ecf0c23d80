package codegen

import "fmt"

// Error represents a code generation failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("codegen error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("codegen error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
