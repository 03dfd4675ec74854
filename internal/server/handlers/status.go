package handlers

import (
	"fmt"
	"net/http"

	"github.com/newsbench/newsd/internal/server/response"
)

// EndpointInfo describes one API endpoint in the status catalog.
type EndpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	API       string         `json:"api"`
	Version   string         `json:"version"`
	Status    string         `json:"status"`
	Endpoints []EndpointInfo `json:"endpoints"`
}

var endpointCatalog = []EndpointInfo{
	{"GET", "/api/articles", "List articles (paginated, filterable, searchable)"},
	{"GET", "/api/articles/{id}", "Get single article details"},
	{"POST", "/api/articles", "Create new article"},
	{"PUT", "/api/articles/{id}", "Update existing article"},
	{"DELETE", "/api/articles/{id}", "Delete article"},
	{"GET", "/api/categories", "List all categories"},
	{"GET", "/api/categories/{name}/articles", "Get articles by category"},
}

// HandleStatus handles GET /api/status.
func (h *Handlers) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, StatusResponse{
		API:       "News Research Backend",
		Version:   h.version,
		Status:    "operational",
		Endpoints: endpointCatalog,
	})
}

// HandleRoot handles GET /: a plain-text index of the API for humans
// poking at the server with curl.
func (h *Handlers) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	fmt.Fprintf(w, "News Research Backend API v%s\n\n", h.version)
	fmt.Fprintln(w, "Health & Status:")
	fmt.Fprintln(w, "- GET  /health")
	fmt.Fprintln(w, "- GET  /api/status")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Articles:")
	fmt.Fprintln(w, "- GET    /api/articles                     (List all articles, paginated)")
	fmt.Fprintln(w, "- GET    /api/articles?page=1&limit=20     (Pagination)")
	fmt.Fprintln(w, "- GET    /api/articles?category=Technology (Filter by category)")
	fmt.Fprintln(w, "- GET    /api/articles?search=AI           (Search articles)")
	fmt.Fprintln(w, "- GET    /api/articles/{id}                (Get single article)")
	fmt.Fprintln(w, "- POST   /api/articles                     (Create new article)")
	fmt.Fprintln(w, "- PUT    /api/articles/{id}                (Update article)")
	fmt.Fprintln(w, "- DELETE /api/articles/{id}                (Delete article)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Categories:")
	fmt.Fprintln(w, "- GET  /api/categories                     (List all categories)")
	fmt.Fprintln(w, "- GET  /api/categories/{name}/articles     (Get articles by category)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Current data: 80 seeded articles across 6 categories")
	fmt.Fprintln(w, "All /api endpoints include simulated network delays (30-100ms)")
}
