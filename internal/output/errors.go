package output

import "fmt"

// IOError represents a failure writing or moving files on disk. It carries
// the path being operated on so callers can report which artifact failed.
type IOError struct {
	Path    string
	Message string
	Cause   error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output error at %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("output error at %s: %s", e.Path, e.Message)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}
