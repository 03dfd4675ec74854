package news

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the process-wide holder of articles and categories. It is safe for
// concurrent use: reads go through the collections' own locks, while
// mutations additionally take the store mutex so that the article write and
// the category-count recomputation appear atomic to other mutators.
//
// Category counts are recomputed by a full rescan after every mutation. That
// is fine at this dataset size; a larger system would maintain the counts
// incrementally.
type Store struct {
	mu         sync.Mutex // serializes mutations, including count recomputation
	articles   *Articles
	categories *Categories

	now   func() time.Time
	newID func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock replaces the clock used to stamp created articles.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the generator used for created article IDs.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		articles:   NewArticles(),
		categories: NewCategories(),
		now:        time.Now,
		newID:      uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Seed bulk-loads categories and articles, typically once at process start,
// and recomputes category counts.
func (s *Store) Seed(categories []Category, articles []Article) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, category := range categories {
		s.categories.Set(category)
	}
	for _, article := range articles {
		s.articles.Set(article.ID, snapshot(article))
	}
	s.recountLocked()
}

// List returns one page of articles, optionally filtered by exact category
// name, sorted descending by publication time. Page and pageSize are assumed
// already validated by the caller.
func (s *Store) List(page, pageSize int, category string) []Article {
	matched := s.collect(func(a Article) bool {
		return category == "" || a.Category == category
	})
	return paginate(sortByRecency(matched), page, pageSize)
}

// Count returns the number of articles, optionally filtered by exact
// category name.
func (s *Store) Count(category string) int {
	if category == "" {
		return s.articles.Len()
	}

	count := 0
	s.articles.ForEach(func(_ string, a Article) bool {
		if a.Category == category {
			count++
		}
		return true
	})
	return count
}

// Get returns an article snapshot by id.
func (s *Store) Get(id string) (Article, bool) {
	a, ok := s.articles.Get(id)
	if !ok {
		return Article{}, false
	}
	return snapshot(a), true
}

// Create inserts a new article from the request, assigning a fresh ID and the
// current time, and returns the stored snapshot.
func (s *Store) Create(req CreateArticleRequest) Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	article := Article{
		ID:              s.newID(),
		Title:           req.Title,
		Content:         req.Content,
		Summary:         req.Summary,
		Author:          req.Author,
		PublishedAt:     s.now().UnixMilli(),
		Category:        req.Category,
		ReadTimeMinutes: req.ReadTimeMinutes,
		Tags:            copyTags(req.Tags),
	}

	s.articles.Set(article.ID, article)
	s.recountLocked()

	return snapshot(article)
}

// Update overwrites only the fields present in the request. It returns the
// updated snapshot, or false if the id is unknown.
func (s *Store) Update(id string, req UpdateArticleRequest) (Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.articles.Get(id)
	if !ok {
		return Article{}, false
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Summary != nil {
		existing.Summary = *req.Summary
	}
	if req.Author != nil {
		existing.Author = *req.Author
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.ReadTimeMinutes != nil {
		existing.ReadTimeMinutes = *req.ReadTimeMinutes
	}
	if req.Tags != nil {
		existing.Tags = copyTags(*req.Tags)
	}

	s.articles.Set(id, existing)
	s.recountLocked()

	return snapshot(existing), true
}

// Delete removes an article by id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.articles.Delete(id) {
		return false
	}
	s.recountLocked()
	return true
}

// Categories returns all categories in stable seed order.
func (s *Store) Categories() []Category {
	return s.categories.List()
}

// CategoryByName returns the category whose name matches case-insensitively.
func (s *Store) CategoryByName(name string) (Category, bool) {
	return s.categories.FindByName(name)
}

// Search returns one page of articles whose title, content, summary, or any
// tag contains the query as a case-insensitive substring, sorted descending
// by publication time.
func (s *Store) Search(query string, page, pageSize int) []Article {
	return paginate(sortByRecency(s.searchAll(query)), page, pageSize)
}

// SearchCount returns the total number of articles matching the query.
func (s *Store) SearchCount(query string) int {
	return len(s.searchAll(query))
}

func (s *Store) searchAll(query string) []Article {
	q := strings.ToLower(query)
	return s.collect(func(a Article) bool {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Content), q) ||
			strings.Contains(strings.ToLower(a.Summary), q) {
			return true
		}
		for _, tag := range a.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

// collect returns snapshots of all articles matching the predicate.
func (s *Store) collect(match func(Article) bool) []Article {
	var matched []Article
	s.articles.ForEach(func(_ string, a Article) bool {
		if match(a) {
			matched = append(matched, snapshot(a))
		}
		return true
	})
	return matched
}

// recountLocked rescans all articles and rewrites every category's count.
// Callers must hold s.mu.
func (s *Store) recountLocked() {
	counts := make(map[string]int)
	s.articles.ForEach(func(_ string, a Article) bool {
		counts[a.Category]++
		return true
	})

	for _, category := range s.categories.List() {
		category.ArticleCount = counts[category.Name]
		s.categories.Set(category)
	}
}

// sortByRecency sorts articles descending by publication time. The sort is
// stable so equal timestamps keep their relative order.
func sortByRecency(articles []Article) []Article {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt > articles[j].PublishedAt
	})
	return articles
}

// paginate applies offset/limit windowing: offset = (page-1)*pageSize.
// The past-the-end check divides instead of multiplying so an absurdly large
// page number cannot overflow into a negative offset.
func paginate(articles []Article, page, pageSize int) []Article {
	if page-1 >= (len(articles)+pageSize-1)/pageSize {
		return []Article{}
	}

	offset := (page - 1) * pageSize
	end := offset + pageSize
	if end > len(articles) {
		end = len(articles)
	}
	return articles[offset:end]
}

// snapshot deep-copies an article so stored and returned values never share
// tag slices.
func snapshot(a Article) Article {
	a.Tags = copyTags(a.Tags)
	return a
}

func copyTags(tags []string) []string {
	copied := make([]string, len(tags))
	copy(copied, tags)
	return copied
}
