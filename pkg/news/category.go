package news

// Category represents an article category. ArticleCount is derived and is
// recomputed by the store after every article mutation.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ArticleCount int    `json:"articleCount"`
}

// CategoryArticlesResponse is the body of GET /api/categories/{name}/articles:
// category info plus a page of its articles.
type CategoryArticlesResponse struct {
	Category      Category  `json:"category"`
	Articles      []Article `json:"articles"`
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
	TotalPages    int       `json:"totalPages"`
	TotalArticles int       `json:"totalArticles"`
}
