package pihole

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse marks a 200 response whose body is not valid JSON.
var ErrInvalidResponse = errors.New("invalid JSON response")

// HTTPError reports a non-200 status from the admin API.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api call failed with status code %d", e.Status)
}
