package errors

import (
	"errors"
	"fmt"
)

var NotFound = errors.New("not found")
var Conflict = errors.New("already exists")

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// UpstreamError is any non-2xx response from the forum API. The body is kept
// verbatim so callers and logs see exactly what the forum said.
type UpstreamError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("forum returned %d for %s %s: %s", e.StatusCode, e.Method, e.URL, e.Body)
}
