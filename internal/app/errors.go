package app

import "github.com/pkg/errors"

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// NotFoundError is returned when requested collective or tier doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// TransportError wraps any failure of the api transport: network, http status,
// graphql errors or malformed response.
type TransportError struct {
	Op  string
	Err error
}

// NewTransportError creates TransportError for given operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// Error implements error interface
func (e *TransportError) Error() string {
	if e.Err == nil {
		return "transport: " + e.Op
	}
	return "transport: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport tells that this error is 'transport error'.
// Returns always true.
func (*TransportError) IsTransport() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// IsNotFoundError checks if given error is caused by missing entity
func IsNotFoundError(err error) bool {
	var nfe interface {
		IsNotFound() bool
	}
	if errors.As(err, &nfe) {
		return nfe.IsNotFound()
	}

	return false
}

// IsTransportError checks if given error is caused by transport failure
func IsTransportError(err error) bool {
	var te interface {
		IsTransport() bool
	}
	if errors.As(err, &te) {
		return te.IsTransport()
	}

	return false
}
