package news

import (
	"maps"
	"sync"
)

// Articles is a concurrent safe map of articles keyed by ID. Values are
// stored and returned by value so callers always hold snapshots.
type Articles struct {
	mu       sync.RWMutex
	articles map[string]Article
}

// ArticlesOption defines a function that configures an Articles instance.
type ArticlesOption func(*Articles)

// WithArticlesCapacity sets the initial capacity of the articles map.
func WithArticlesCapacity(capacity int) ArticlesOption {
	return func(a *Articles) {
		a.articles = make(map[string]Article, capacity)
	}
}

// WithArticlesMap initializes the map with existing articles.
func WithArticlesMap(articles map[string]Article) ArticlesOption {
	return func(a *Articles) {
		if articles != nil {
			a.articles = make(map[string]Article, len(articles))
			maps.Copy(a.articles, articles)
		}
	}
}

// NewArticles creates a new Articles map with optional configuration.
func NewArticles(opts ...ArticlesOption) *Articles {
	a := &Articles{
		articles: make(map[string]Article),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Get returns an article by id and whether it exists.
func (a *Articles) Get(id string) (Article, bool) {
	a.mu.RLock()
	article, ok := a.articles[id]
	a.mu.RUnlock()
	return article, ok
}

// Set stores an article under the given id, replacing any existing entry.
func (a *Articles) Set(id string, article Article) {
	a.mu.Lock()
	a.articles[id] = article
	a.mu.Unlock()
}

// Delete removes an article by id and reports whether it existed.
func (a *Articles) Delete(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.articles[id]; !exists {
		return false
	}

	delete(a.articles, id)
	return true
}

// Exists checks if an article exists without returning it.
func (a *Articles) Exists(id string) bool {
	a.mu.RLock()
	_, exists := a.articles[id]
	a.mu.RUnlock()
	return exists
}

// Len returns the number of articles.
func (a *Articles) Len() int {
	a.mu.RLock()
	length := len(a.articles)
	a.mu.RUnlock()
	return length
}

// List returns a slice of all articles in unspecified order.
func (a *Articles) List() []Article {
	a.mu.RLock()
	articles := make([]Article, 0, len(a.articles))
	for _, article := range a.articles {
		articles = append(articles, article)
	}
	a.mu.RUnlock()
	return articles
}

// ForEach applies a function to each article. If the function returns false,
// iteration stops early.
func (a *Articles) ForEach(fn func(id string, article Article) bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for id, article := range a.articles {
		if !fn(id, article) {
			break
		}
	}
}

// Clear removes all articles.
func (a *Articles) Clear() {
	a.mu.Lock()
	a.articles = make(map[string]Article)
	a.mu.Unlock()
}
