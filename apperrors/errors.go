// Package apperrors defines the closed error taxonomy of the Fio API client.
//
// Every fallible operation in this module returns either a success value or
// one of the errors below; nothing is retried internally and nothing panics.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrInvalidDateFormat indicates that a caller-supplied date or year string
// failed the local syntax check. The request never reaches the network.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrLimit indicates the API request limit was hit (HTTP 409). Try again later.
var ErrLimit = errors.New("api request limit reached, try again later")

// ErrToken indicates the access token does not exist or is deactivated (HTTP 404).
var ErrToken = errors.New("token does not exist or is deactivated")

// ErrMalformed indicates the server rejected the request as malformed (HTTP 500).
var ErrMalformed = errors.New("request was malformed")

// ErrTooLarge indicates the request payload was rejected as too large (HTTP 413).
var ErrTooLarge = errors.New("request payload too large")

// ErrHistoricalDataLocked indicates the requested data is older than the
// bank's rolling authorization window (HTTP 422).
var ErrHistoricalDataLocked = errors.New("historical data outside the authorization window")

// InvalidResponseError indicates a response that should have a fixed shape
// did not, e.g. the comma-delimited last-statement-id line.
type InvalidResponseError struct {
	Detail string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response: %s", e.Detail)
}

// StatusError carries a non-2xx HTTP status that has no dedicated mapping.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.StatusCode)
}

// DecodeError wraps a JSON decode failure with the endpoint it came from.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding reply for %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
