package ledger

import (
	"sync"

	"github.com/x00/Application-Yaga/internal/entity"
)

// summaryKey is a structured cache key. String concatenation of type and id
// would be ambiguous in the general case; the tuple never is.
type summaryKey struct {
	ParentType entity.ParentType
	ParentID   int64
}

// summaryCache holds computed reaction summaries per content item. It is a
// process-local optimization, never a source of truth: the store remains
// authoritative and entries are dropped before every write to their key.
type summaryCache struct {
	mu      sync.RWMutex
	entries map[summaryKey][]SummaryEntry
}

func newSummaryCache() *summaryCache {
	return &summaryCache{entries: make(map[summaryKey][]SummaryEntry)}
}

func (c *summaryCache) Get(key summaryKey) ([]SummaryEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	summary, ok := c.entries[key]
	return summary, ok
}

func (c *summaryCache) Put(key summaryKey, summary []SummaryEntry) {
	c.mu.Lock()
	c.entries[key] = summary
	c.mu.Unlock()
}

func (c *summaryCache) Invalidate(key summaryKey) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
