package turkmorph

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is the number of words kept by the analysis cache
// when Config.CacheSize is zero.
const DefaultCacheSize = 10_000

// analysisCache memoizes WordAnalysis values by the exact input string.
// Concurrent misses on the same word share one computation.
type analysisCache struct {
	entries *lru.Cache[string, *WordAnalysis]
	group   singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

func newAnalysisCache(size int) (*analysisCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, *WordAnalysis](size)
	if err != nil {
		return nil, err
	}
	return &analysisCache{entries: entries}, nil
}

// get returns a copy of the cached analysis of word, computing and storing
// it on a miss. Callers own the result.
func (c *analysisCache) get(word string, compute func(string) *WordAnalysis) *WordAnalysis {
	if v, ok := c.entries.Get(word); ok {
		c.hits.Add(1)
		return v.clone()
	}
	v, _, _ := c.group.Do(word, func() (any, error) {
		// Another flight may have stored the word since the check above.
		if v, ok := c.entries.Peek(word); ok {
			return v, nil
		}
		c.misses.Add(1)
		v := compute(word)
		c.entries.Add(word, v)
		return v, nil
	})
	return v.(*WordAnalysis).clone()
}

// CacheStats reports analysis cache usage.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Len    int   `json:"len"`
}

func (c *analysisCache) stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Len: c.entries.Len()}
}
