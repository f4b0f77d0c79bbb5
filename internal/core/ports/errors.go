package ports

import (
	"errors"
	"fmt"
)

// NotFoundError means the identifier does not resolve upstream. It is not
// retried and surfaces as a "no data" state, never as a crash.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// UpstreamError is a network failure or non-2xx response from the data API.
// Status and Body are kept for diagnostics; callers degrade to an empty or
// fallback record set and surface a warning.
type UpstreamError struct {
	Endpoint string
	Status   int
	Body     string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("upstream %s: status=%d body=%s", e.Endpoint, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError marks a malformed upstream payload. For propagation it counts as
// an upstream failure.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUpstreamFailure reports whether err should degrade to an
// empty-result-plus-warning at the UI boundary. Parse failures count.
func IsUpstreamFailure(err error) bool {
	var ue *UpstreamError
	var pe *ParseError
	return errors.As(err, &ue) || errors.As(err, &pe)
}
