package server

import (
	"net/http"
	"strings"

	"github.com/newsbench/newsd/internal/server/handlers"
	"github.com/newsbench/newsd/internal/server/middleware"
	"github.com/newsbench/newsd/internal/server/response"
)

// Handler returns the configured http.Handler with the middleware chain
// applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.store, s.cache, s.config.Version, s.config.SimulateLatency)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			response.NotFound(w, "The requested endpoint '"+r.URL.Path+"' was not found")
			return
		}
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h.HandleRoot(w, r)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h.HandleHealth(w, r)
	})

	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h.HandleStatus(w, r)
	})

	// Articles endpoints
	mux.HandleFunc("/api/articles", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleListArticles(w, r)
		case http.MethodPost:
			h.HandleCreateArticle(w, r)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	mux.HandleFunc("/api/articles/", func(w http.ResponseWriter, r *http.Request) {
		id := extractPathParam(r.URL.Path, "/api/articles/")

		switch r.Method {
		case http.MethodGet:
			h.HandleGetArticle(w, r, id)
		case http.MethodPut:
			h.HandleUpdateArticle(w, r, id)
		case http.MethodDelete:
			h.HandleDeleteArticle(w, r, id)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	// Categories endpoints
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h.HandleListCategories(w, r)
	})

	mux.HandleFunc("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(strings.TrimPrefix(r.URL.Path, "/api/categories/"))

		if len(parts) == 2 && parts[1] == "articles" {
			if r.Method != http.MethodGet {
				response.MethodNotAllowed(w, r.Method)
				return
			}
			h.HandleCategoryArticles(w, r, parts[0])
			return
		}

		response.NotFound(w, "The requested endpoint '"+r.URL.Path+"' was not found")
	})
}

// applyMiddleware wraps the handler with the middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	if s.config.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(s.config.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = s.config.CORSOrigins
			corsConfig.AllowAll = false
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	handler = middleware.DefaultHeaders(s.config.Version)(handler)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// extractPathParam extracts the first path segment after prefix.
func extractPathParam(path, prefix string) string {
	trimmed := strings.TrimPrefix(path, prefix)
	parts := strings.Split(trimmed, "/")
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
