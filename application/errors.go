package application

import "fmt"

// UnknownMethodError is returned when a requested method name has no entry
// in the operation catalog. Not retryable.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method: %q", e.Method)
}

// InvalidParamsError is returned when a parameter payload fails schema
// validation. It carries the full list of violated fields so callers can
// correct them in one pass.
type InvalidParamsError struct {
	Method     string
	Violations []Violation
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("invalid parameters for %q: %d violation(s)",
		e.Method, len(e.Violations))
}
