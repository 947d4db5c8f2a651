package tree

import (
	"sort"
	"strings"
	"sync"

	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	"github.com/manuelguarniz/project-nlp-simplified/internal/metrics"
)

// resultCache memoizes traversal results under a bounded capacity. Eviction
// is strict FIFO on insertion order, not LRU; a lookup does not refresh an
// entry's position. The policy is deliberately simple and is adequate only
// because workloads are small.
//
// A single mutex covers read, write, and evict so the cache is safe to share
// across goroutines; operations are O(1) amortized and contention is expected
// to be low.
type resultCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*domain.SearchResult
	order    []string
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		capacity: capacity,
		entries:  make(map[string]*domain.SearchResult, capacity),
	}
}

// Get returns a copy of the cached result, leaving the stored snapshot
// untouched.
func (c *resultCache) Get(key string) (*domain.SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached, ok := c.entries[key]
	if !ok {
		metrics.CacheMisses.Inc()
		return nil, false
	}
	metrics.CacheHits.Inc()
	return cached.Clone(), true
}

// Put stores an immutable snapshot, evicting the oldest-inserted entry when
// at capacity.
func (c *resultCache) Put(key string, result *domain.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = result.Clone()
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		metrics.CacheEvictions.Inc()
	}
	c.entries[key] = result.Clone()
	c.order = append(c.order, key)
	metrics.CacheSize.Set(float64(len(c.entries)))
}

func (c *resultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *resultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*domain.SearchResult, c.capacity)
	c.order = nil
	metrics.CacheSize.Set(0)
}

// cacheKey builds the memoization key from sorted, deduplicated token and
// modifier lists. The key omits emoticon and punctuation derived fields even
// though conditions may branch on them, so two inputs that differ only in
// punctuation share a cached result. Disable memoization when that matters.
func cacheKey(in *domain.Input) string {
	var b strings.Builder
	writeSortedUnique(&b, in.Tokens)
	b.WriteByte('_')
	writeSortedUnique(&b, in.Intensifiers)
	b.WriteByte('_')
	writeSortedUnique(&b, in.Attenuators)
	b.WriteByte('_')
	writeSortedUnique(&b, in.Negations)
	return b.String()
}

func writeSortedUnique(b *strings.Builder, words []string) {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	b.WriteByte('(')
	prev := ""
	first := true
	for _, w := range sorted {
		if !first && w == prev {
			continue
		}
		if !first {
			b.WriteByte('|')
		}
		b.WriteString(w)
		prev = w
		first = false
	}
	b.WriteByte(')')
}
