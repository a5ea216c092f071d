package transport

import "fmt"

// TransportError reports a failed exchange: spawn failure, non-zero exit
// code, or in-process client error. It carries the process's stderr (or the
// client error message) verbatim; callers surface it without retrying.
type TransportError struct {
	Message  string
	ExitCode int
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("transport failed with code %d", e.ExitCode)
}
