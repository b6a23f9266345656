package targets

import "fmt"

// APIError is a failed call against the config service. RawBody carries the
// upstream response text when one was received, for diagnostics only.
type APIError struct {
	Status  int
	Message string
	RawBody string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("config service returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("config service request failed: %s", e.Message)
}
