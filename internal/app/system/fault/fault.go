// Package fault defines the error taxonomy shared by the access-control,
// directory, and content services, and the mapping from errors to HTTP
// responses.
//
// Sentinel messages double as the wire messages returned to clients, so
// handlers can respond with fault.Message(err) directly. Store failures are
// wrapped with Store so the underlying error survives for logging while the
// client only ever sees a generic message.
package fault

import (
	"errors"
	"net/http"
)

// Sentinel errors for request-level failures. The error text is the exact
// message serialized to clients.
var (
	ErrUnauthorized    = errors.New("Unauthorized")
	ErrMissingName     = errors.New("Missing name")
	ErrMissingType     = errors.New("Missing type")
	ErrMissingData     = errors.New("Missing data")
	ErrParentNotFound  = errors.New("Parent not found")
	ErrParentNotFolder = errors.New("Parent is not a folder")
	ErrNotFound        = errors.New("Not found")
	ErrFolderNoContent = errors.New("A folder doesn't have content")
)

// StoreError wraps a failure of an underlying store (MongoDB, Redis, blob
// storage). The wrapped error is for logs only and is never sent to clients.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store error: " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError. A nil err returns nil.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}

// IsStore reports whether err is (or wraps) a StoreError.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// HTTPStatus maps a service error to its HTTP status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingName),
		errors.Is(err, ErrMissingType),
		errors.Is(err, ErrMissingData),
		errors.Is(err, ErrParentNotFound),
		errors.Is(err, ErrParentNotFolder),
		errors.Is(err, ErrFolderNoContent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for a service error. Store
// failures and anything unrecognized collapse to a generic message so store
// internals never leak.
func Message(err error) string {
	if IsStore(err) || HTTPStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
