package news

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrentMutationsKeepCountsConsistent hammers the store with parallel
// creates, updates, deletes, and reads, then checks that every category's
// count still equals the number of articles naming it.
func TestConcurrentMutationsKeepCountsConsistent(t *testing.T) {
	s := NewStore(WithClock(func() time.Time { return time.UnixMilli(1000) }))
	s.Seed(testCategories(), testArticles())

	const writers = 8
	const iterations = 50

	var writing sync.WaitGroup
	for w := 0; w < writers; w++ {
		writing.Add(1)
		go func(w int) {
			defer writing.Done()
			category := "Technology"
			if w%2 == 1 {
				category = "Science"
			}
			for i := 0; i < iterations; i++ {
				created := s.Create(CreateArticleRequest{
					Title:    fmt.Sprintf("writer %d article %d", w, i),
					Content:  "body",
					Summary:  "summary",
					Author:   "load test",
					Category: category,
				})
				if i%3 == 0 {
					s.Delete(created.ID)
				} else if i%3 == 1 {
					title := "renamed"
					s.Update(created.ID, UpdateArticleRequest{Title: &title})
				}
			}
		}(w)
	}

	// Readers race the writers until all writers finish. Every read must
	// return without panicking even while counts are being rewritten.
	done := make(chan struct{})
	var reading sync.WaitGroup
	for r := 0; r < 4; r++ {
		reading.Add(1)
		go func() {
			defer reading.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				s.List(1, 20, "")
				s.Count("Technology")
				s.Categories()
				s.Search("writer", 1, 10)
			}
		}()
	}

	writing.Wait()
	close(done)
	reading.Wait()

	assertCountsConsistent(t, s)
	assert.Equal(t, s.Count(""), len(s.List(1, s.Count("")+1, "")))
}

// TestConcurrentReadsDoNotBlockEachOther just exercises the read paths in
// parallel; the race detector does the real checking here.
func TestConcurrentReadsDoNotBlockEachOther(t *testing.T) {
	s := NewStore()
	s.Seed(testCategories(), testArticles())

	var wg sync.WaitGroup
	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Get("tech-1")
				s.List(1, 10, "Science")
				s.CategoryByName("technology")
				s.SearchCount("reefs")
			}
		}()
	}
	wg.Wait()
}
