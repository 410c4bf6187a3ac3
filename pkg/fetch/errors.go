package fetch

import (
	"fmt"

	"github.com/aholstenson/aget/pkg/network"
)

// StatusError is returned when a response was received but its status code
// indicates a failure. The response is complete and can still be printed.
type StatusError struct {
	Response *network.Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status code %d", e.Response.URL, e.Response.StatusCode)
}

// TransportError is returned when no complete response could be obtained,
// such as when the connection fails or the timeout expires.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
