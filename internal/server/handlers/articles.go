package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/newsbench/newsd/internal/server/params"
	"github.com/newsbench/newsd/internal/server/response"
	"github.com/newsbench/newsd/pkg/errors"
	"github.com/newsbench/newsd/pkg/logging"
	"github.com/newsbench/newsd/pkg/news"
)

// DeleteResponse is the body of a successful DELETE /api/articles/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// HandleListArticles handles GET /api/articles. Search takes precedence over
// the category filter when both are supplied.
func (h *Handlers) HandleListArticles(w http.ResponseWriter, r *http.Request) {
	h.delay(r.Context(), listDelay)

	p, err := params.ParseList(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	cacheKey := "articles:" + r.URL.RawQuery
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	var articles []news.Article
	var total int
	if strings.TrimSpace(p.Search) != "" {
		articles = h.store.Search(p.Search, p.Page, p.PageSize)
		total = h.store.SearchCount(p.Search)
	} else {
		articles = h.store.List(p.Page, p.PageSize, p.Category)
		total = h.store.Count(p.Category)
	}

	resp := news.ArticlesResponse{
		Articles:      articles,
		Page:          p.Page,
		PageSize:      p.PageSize,
		TotalPages:    params.TotalPages(total, p.PageSize),
		TotalArticles: total,
	}

	h.cache.Set(cacheKey, resp)
	response.OK(w, resp)
}

// HandleGetArticle handles GET /api/articles/{id}.
func (h *Handlers) HandleGetArticle(w http.ResponseWriter, r *http.Request, id string) {
	h.delay(r.Context(), getDelay)

	if id == "" {
		response.Error(w, errors.NewValidationError("id", "Article ID is required"))
		return
	}

	cacheKey := "article:" + id
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	article, ok := h.store.Get(id)
	if !ok {
		response.Error(w, errors.NewNotFoundError("Article", id))
		return
	}

	h.cache.Set(cacheKey, article)
	response.OK(w, article)
}

// HandleCreateArticle handles POST /api/articles.
func (h *Handlers) HandleCreateArticle(w http.ResponseWriter, r *http.Request) {
	h.delay(r.Context(), createDelay)

	var req news.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, errors.NewValidationError("body", "Invalid request body"))
		return
	}

	if err := h.validateCreate(req); err != nil {
		response.Error(w, err)
		return
	}

	article := h.store.Create(req)
	h.invalidate()

	logging.Ctx(r.Context()).Info().
		Str("id", article.ID).
		Str("category", article.Category).
		Msg("Article created")

	response.Created(w, article)
}

// validateCreate checks required fields and the category reference.
func (h *Handlers) validateCreate(req news.CreateArticleRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.NewValidationError("title", "Article title cannot be empty")
	}
	if strings.TrimSpace(req.Content) == "" {
		return errors.NewValidationError("content", "Article content cannot be empty")
	}
	if strings.TrimSpace(req.Summary) == "" {
		return errors.NewValidationError("summary", "Article summary cannot be empty")
	}
	if _, ok := h.store.CategoryByName(req.Category); !ok {
		return errors.NewValidationError("category", "Category '"+req.Category+"' does not exist")
	}
	return nil
}

// HandleUpdateArticle handles PUT /api/articles/{id}.
func (h *Handlers) HandleUpdateArticle(w http.ResponseWriter, r *http.Request, id string) {
	h.delay(r.Context(), updateDelay)

	if id == "" {
		response.Error(w, errors.NewValidationError("id", "Article ID is required"))
		return
	}

	var req news.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, errors.NewValidationError("body", "Invalid request body"))
		return
	}

	if req.Category != nil {
		if _, ok := h.store.CategoryByName(*req.Category); !ok {
			response.Error(w, errors.NewValidationError("category", "Category '"+*req.Category+"' does not exist"))
			return
		}
	}

	updated, ok := h.store.Update(id, req)
	if !ok {
		response.Error(w, errors.NewNotFoundError("Article", id))
		return
	}
	h.invalidate()

	logging.Ctx(r.Context()).Info().Str("id", id).Msg("Article updated")

	response.OK(w, updated)
}

// HandleDeleteArticle handles DELETE /api/articles/{id}.
func (h *Handlers) HandleDeleteArticle(w http.ResponseWriter, r *http.Request, id string) {
	h.delay(r.Context(), deleteDelay)

	if id == "" {
		response.Error(w, errors.NewValidationError("id", "Article ID is required"))
		return
	}

	if !h.store.Delete(id) {
		response.Error(w, errors.NewNotFoundError("Article", id))
		return
	}
	h.invalidate()

	logging.Ctx(r.Context()).Info().Str("id", id).Msg("Article deleted")

	response.OK(w, DeleteResponse{
		Message: "Article deleted successfully",
		ID:      id,
	})
}
