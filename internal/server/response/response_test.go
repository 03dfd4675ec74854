package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsbench/newsd/pkg/errors"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSONHeadersAndIndentation(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"status": "healthy"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))

	// Pretty-printed with four-space indentation and a trailing newline.
	assert.Contains(t, rec.Body.String(), "{\n    \"status\": \"healthy\"\n}")
	assert.True(t, strings.HasSuffix(rec.Body.String(), "\n"))
}

func TestJSONUnmarshalableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, func() {})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Internal Server Error", body.Error)
}

func TestOKAndCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]int{"n": 1})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	Created(rec, map[string]int{"n": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestErrorBodiesCarryStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		label  string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "nope") }, http.StatusBadRequest, "Bad Request"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "gone") }, http.StatusNotFound, "Not Found"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "dupe") }, http.StatusConflict, "Conflict"},
		{"internal", func(w http.ResponseWriter) { InternalError(w, fmt.Errorf("boom")) }, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.label, body.Error)
			assert.Equal(t, tt.status, body.StatusCode)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	InternalError(rec, fmt.Errorf("connection string leaked"))
	assert.NotContains(t, rec.Body.String(), "leaked")
	assert.Equal(t, "An unexpected error occurred", decodeError(t, rec).Message)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, http.MethodPatch)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "The PATCH method is not allowed for this endpoint", body.Message)
}

func TestErrorMapsTypedErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", errors.NewValidationError("title", "Article title cannot be empty"), http.StatusBadRequest, "Article title cannot be empty"},
		{"not found", errors.NewNotFoundError("Article", "tech-99"), http.StatusNotFound, "Article 'tech-99' not found"},
		{"conflict", errors.NewConflictError("already exists"), http.StatusConflict, "already exists"},
		{"unknown", fmt.Errorf("disk on fire"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
		})
	}
}
