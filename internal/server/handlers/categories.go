package handlers

import (
	"net/http"

	"github.com/newsbench/newsd/internal/server/params"
	"github.com/newsbench/newsd/internal/server/response"
	"github.com/newsbench/newsd/pkg/errors"
	"github.com/newsbench/newsd/pkg/news"
)

// HandleListCategories handles GET /api/categories.
func (h *Handlers) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	h.delay(r.Context(), categoriesDelay)

	if cached, found := h.cache.Get("categories"); found {
		response.OK(w, cached)
		return
	}

	categories := h.store.Categories()
	h.cache.Set("categories", categories)
	response.OK(w, categories)
}

// HandleCategoryArticles handles GET /api/categories/{name}/articles.
// The category name is matched case-insensitively; listed articles use the
// category's canonical name.
func (h *Handlers) HandleCategoryArticles(w http.ResponseWriter, r *http.Request, name string) {
	h.delay(r.Context(), listDelay)

	if name == "" {
		response.Error(w, errors.NewValidationError("name", "Category name is required"))
		return
	}

	category, ok := h.store.CategoryByName(name)
	if !ok {
		response.Error(w, errors.NewNotFoundError("Category", name))
		return
	}

	p, err := params.ParseList(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	cacheKey := "category:" + category.Name + "?" + r.URL.RawQuery
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	articles := h.store.List(p.Page, p.PageSize, category.Name)
	total := h.store.Count(category.Name)

	resp := news.CategoryArticlesResponse{
		Category:      category,
		Articles:      articles,
		Page:          p.Page,
		PageSize:      p.PageSize,
		TotalPages:    params.TotalPages(total, p.PageSize),
		TotalArticles: total,
	}

	h.cache.Set(cacheKey, resp)
	response.OK(w, resp)
}
