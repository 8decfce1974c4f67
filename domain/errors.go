package domain

import (
	"errors"
	"fmt"
)

// ErrNoListing indicates that no listing has been saved yet.
var ErrNoListing = errors.New("no saved listing, run the list command first")

// NotFoundError reports a rank, listing or item that does not exist.
type NotFoundError struct {
	What string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("not found: %s: %v", e.What, e.Err)
	}
	return "not found: " + e.What
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// TransportError reports a failure to reach the API or a non-2xx response.
// StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: HTTP %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response that is not valid JSON or lacks a field the
// caller needs. Source is the URL fetched, or the item it came from.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err (or any wrapped error) is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsStatus reports whether err (or any wrapped error) is a TransportError
// with the given status code.
func IsStatus(err error, code int) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode == code
	}
	return false
}
