package stock

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsuccessfulResponse matches any *ResponseError.
	ErrUnsuccessfulResponse = errors.New("unsuccessful response")
	// ErrMalformedPayload matches any *PayloadError.
	ErrMalformedPayload = errors.New("malformed payload")
)

// ResponseError reports a non-2xx status or a response without a body.
type ResponseError struct {
	Endpoint    string
	Status      int
	MissingBody bool
}

func (e *ResponseError) Error() string {
	if e.MissingBody {
		return fmt.Sprintf("%s: status %d with no body", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Status)
}

func (e *ResponseError) Is(target error) bool {
	return target == ErrUnsuccessfulResponse
}

// PayloadError reports a body that does not decode into the expected shape.
type PayloadError struct {
	Endpoint string
	Err      error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: decode payload: %v", e.Endpoint, e.Err)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

func (e *PayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}
