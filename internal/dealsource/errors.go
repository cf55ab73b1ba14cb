package dealsource

import (
	"errors"
	"net/http"
)

// ErrBodyTooLarge is wrapped in a ParseFailure when the response exceeds the read limit.
var ErrBodyTooLarge = errors.New("response body too large")

// fetchFailureMessage is shown for any non-2xx response regardless of status or body.
const fetchFailureMessage = "Failed to fetch from API"

// TransportFailure means the request never produced a response
// (connection refused, DNS failure, cancelled context).
type TransportFailure struct {
	Err error
}

func (e *TransportFailure) Error() string {
	return e.Err.Error()
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}

// FetchFailure means the backend answered with a non-success status.
type FetchFailure struct {
	StatusCode int
}

func (e *FetchFailure) Error() string {
	return fetchFailureMessage
}

// Temporary reports whether the status is worth retrying.
func (e *FetchFailure) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// ParseFailure means the body was not a JSON array of deals.
type ParseFailure struct {
	Err error
}

func (e *ParseFailure) Error() string {
	return e.Err.Error()
}

func (e *ParseFailure) Unwrap() error {
	return e.Err
}
