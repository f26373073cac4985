package content

import (
	"sync"

	domain "tamilsangam-app/internal/domain/content"
)

// PageSet is the combined page-scoped + global record set for one page.
type PageSet struct {
	Page    string
	Records []domain.Record
}

// Cache stores loaded page sets keyed by page name. Entries live until
// overwritten or invalidated; content edits are rare and
// operator-triggered, so there is no TTL.
type Cache interface {
	Get(page string) (*PageSet, bool)
	Set(page string, set *PageSet)
	Invalidate(page string)
}

type MapCache struct {
	mu    sync.RWMutex
	pages map[string]*PageSet
}

func NewMapCache() *MapCache {
	return &MapCache{pages: map[string]*PageSet{}}
}

func (c *MapCache) Get(page string) (*PageSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set, ok := c.pages[page]
	return set, ok
}

func (c *MapCache) Set(page string, set *PageSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[page] = set
}

func (c *MapCache) Invalidate(page string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.pages, page)
}
