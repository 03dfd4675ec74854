// Package response provides the JSON writers for the newsd API. Success
// bodies are written as-is; every non-2xx response uses the error body shape
// {error, message, statusCode}. JSON is pretty-printed and marked cacheable
// for 60 seconds, matching the API contract clients benchmark against.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/newsbench/newsd/pkg/errors"
)

// ErrorResponse is the wire shape of every non-2xx response.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// JSON writes a pretty-printed JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		http.Error(w, `{"error":"Internal Server Error","message":"An unexpected error occurred","statusCode":500}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "max-age=60")
	w.WriteHeader(status)
	// Write errors are ignored as headers are already sent (best effort)
	_, _ = w.Write(body)
	_, _ = w.Write([]byte("\n"))
}

// OK writes a successful response with 200 status.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Created writes a successful response with 201 status.
func Created(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Error:      "Bad Request",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	})
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, ErrorResponse{
		Error:      "Not Found",
		Message:    message,
		StatusCode: http.StatusNotFound,
	})
}

// Conflict writes a 409 error response.
func Conflict(w http.ResponseWriter, message string) {
	JSON(w, http.StatusConflict, ErrorResponse{
		Error:      "Conflict",
		Message:    message,
		StatusCode: http.StatusConflict,
	})
}

// MethodNotAllowed writes a 405 error response.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	JSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Error:      "Method Not Allowed",
		Message:    "The " + method + " method is not allowed for this endpoint",
		StatusCode: http.StatusMethodNotAllowed,
	})
}

// InternalError writes a 500 error response with a generic message; the
// actual error is for logs only.
func InternalError(w http.ResponseWriter, _ error) {
	JSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:      "Internal Server Error",
		Message:    "An unexpected error occurred",
		StatusCode: http.StatusInternalServerError,
	})
}

// Error maps typed errors to the appropriate HTTP error response. This is the
// single boundary where the error taxonomy becomes status codes.
func Error(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *errors.ValidationError:
		BadRequest(w, e.Message)
	case *errors.NotFoundError:
		NotFound(w, e.Error())
	case *errors.ConflictError:
		Conflict(w, e.Message)
	default:
		InternalError(w, err)
	}
}
