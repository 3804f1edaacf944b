package language

import "fmt"

// CheckError represents a failure talking to the grammar checker.
type CheckError struct {
	Message string
	Cause   error
}

func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("grammar check failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("grammar check failed: %s", e.Message)
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}
