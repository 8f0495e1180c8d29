package fetch

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three ways a fetch can fail.
var (
	ErrNetwork    = errors.New("network error")
	ErrHTTPStatus = errors.New("unexpected http status")
	ErrParse      = errors.New("malformed response")
)

// NetworkError is returned when the request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%v: %v", ErrNetwork, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNetwork.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// HTTPStatusError is returned for any non-2xx response.
type HTTPStatusError struct {
	Body       string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%v: %d - %s", ErrHTTPStatus, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%v: %d", ErrHTTPStatus, e.StatusCode)
}

// Is reports whether target is ErrHTTPStatus.
func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// ParseError is returned when the body is not a valid transfer list.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
