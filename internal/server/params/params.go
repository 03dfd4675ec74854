// Package params parses and validates query parameters for list endpoints.
package params

import (
	"net/http"
	"strconv"

	"github.com/newsbench/newsd/pkg/errors"
)

const (
	// DefaultPageSize is used when the limit parameter is absent or invalid.
	DefaultPageSize = 20

	// MaxPageSize is the clamp ceiling for the limit parameter.
	MaxPageSize = 100
)

// List holds the parsed pagination and filter parameters of a list request.
// Search takes precedence over Category in the handler layer.
type List struct {
	Page     int
	PageSize int
	Category string
	Search   string
}

// ParseList extracts page/limit/category/search from the request. Malformed
// numbers fall back to defaults; a page below 1 is a validation error.
func ParseList(r *http.Request) (List, error) {
	q := r.URL.Query()

	p := List{
		Page:     parseIntOrDefault(q.Get("page"), 1),
		PageSize: clamp(parseIntOrDefault(q.Get("limit"), DefaultPageSize), 1, MaxPageSize),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	if p.Page < 1 {
		return List{}, errors.NewValidationError("page", "Page number must be greater than 0")
	}

	return p, nil
}

// TotalPages computes ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// parseIntOrDefault parses an integer or returns the default.
func parseIntOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return def
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
