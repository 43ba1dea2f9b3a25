// Package jsonutil provides helper functions for JSON API responses.
//
// All endpoints in this service speak JSON; these helpers keep the
// Content-Type header and the {"error": message} failure shape consistent
// across handlers.
package jsonutil

import (
	"encoding/json"
	"net/http"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/fault"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes a 200 OK JSON response.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created writes a 201 Created JSON response.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// NoContent writes a 204 No Content response (no body).
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes an error response with body {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Fault writes the error response for a service error, using the fault
// package's status and client-facing message mapping. Use this for errors
// coming out of the accessctl, directory, and content services.
func Fault(w http.ResponseWriter, err error) {
	Error(w, fault.HTTPStatus(err), fault.Message(err))
}

// Decode reads and decodes JSON from the request body into v.
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
