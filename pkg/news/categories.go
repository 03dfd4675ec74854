package news

import (
	"strings"
	"sync"
)

// Categories is a concurrent safe map of categories keyed by ID. Insertion
// order is preserved so listings follow stable seed order.
type Categories struct {
	mu         sync.RWMutex
	categories map[string]Category
	order      []string
}

// NewCategories creates a new empty Categories collection.
func NewCategories() *Categories {
	return &Categories{
		categories: make(map[string]Category),
	}
}

// Get returns a category by id and whether it exists.
func (c *Categories) Get(id string) (Category, bool) {
	c.mu.RLock()
	category, ok := c.categories[id]
	c.mu.RUnlock()
	return category, ok
}

// Set stores a category under its id. New ids are appended to the listing
// order; existing ids keep their position.
func (c *Categories) Set(category Category) {
	c.mu.Lock()
	if _, exists := c.categories[category.ID]; !exists {
		c.order = append(c.order, category.ID)
	}
	c.categories[category.ID] = category
	c.mu.Unlock()
}

// FindByName returns the category whose name matches case-insensitively.
func (c *Categories) FindByName(name string) (Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if category := c.categories[id]; strings.EqualFold(category.Name, name) {
			return category, true
		}
	}
	return Category{}, false
}

// Len returns the number of categories.
func (c *Categories) Len() int {
	c.mu.RLock()
	length := len(c.categories)
	c.mu.RUnlock()
	return length
}

// List returns all categories in insertion order.
func (c *Categories) List() []Category {
	c.mu.RLock()
	categories := make([]Category, 0, len(c.order))
	for _, id := range c.order {
		categories = append(categories, c.categories[id])
	}
	c.mu.RUnlock()
	return categories
}

// ForEach applies a function to each category in insertion order. If the
// function returns false, iteration stops early.
func (c *Categories) ForEach(fn func(category Category) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if !fn(c.categories[id]) {
			break
		}
	}
}

// Clear removes all categories.
func (c *Categories) Clear() {
	c.mu.Lock()
	c.categories = make(map[string]Category)
	c.order = nil
	c.mu.Unlock()
}
