package api

import "fmt"

// Error is a non-2xx backend response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// UserMessage returns the backend's human-readable error text, empty when the
// response carried none.
func (e *Error) UserMessage() string {
	return e.Message
}
