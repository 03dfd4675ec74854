// Package news provides the article and category data model and the
// concurrent in-memory store that backs the newsd API.
package news

// Article represents a single news story as served to clients.
// PublishedAt is a Unix timestamp in milliseconds.
type Article struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Summary         string   `json:"summary"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	Author          string   `json:"author"`
	PublishedAt     int64    `json:"publishedAt"`
	Category        string   `json:"category"`
	ReadTimeMinutes int      `json:"readTimeMinutes"`
	Tags            []string `json:"tags"`
}

// CreateArticleRequest is the body of POST /api/articles. The server assigns
// the ID and publication timestamp.
type CreateArticleRequest struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Summary         string   `json:"summary"`
	Author          string   `json:"author"`
	Category        string   `json:"category"`
	ReadTimeMinutes int      `json:"readTimeMinutes"`
	Tags            []string `json:"tags"`
}

// UpdateArticleRequest is the body of PUT /api/articles/{id}. All fields are
// optional; only non-nil fields overwrite the stored article.
type UpdateArticleRequest struct {
	Title           *string   `json:"title"`
	Content         *string   `json:"content"`
	Summary         *string   `json:"summary"`
	Author          *string   `json:"author"`
	Category        *string   `json:"category"`
	ReadTimeMinutes *int      `json:"readTimeMinutes"`
	Tags            *[]string `json:"tags"`
}

// ArticlesResponse is a page of articles with pagination metadata.
type ArticlesResponse struct {
	Articles      []Article `json:"articles"`
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
	TotalPages    int       `json:"totalPages"`
	TotalArticles int       `json:"totalArticles"`
}
