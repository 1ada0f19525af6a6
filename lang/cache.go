package lang

import (
	"math/rand/v2"
	"sync"

	"github.com/zeebo/xxh3"
)

// DefaultCacheCapacity is the entry count a Cache holds before approximate
// LRU eviction kicks in, used when NewCache is called with capacity <= 0.
const DefaultCacheCapacity = 256

// approximateSampleSize is how many entries Cache.add samples when
// choosing an eviction victim, per spec section 4.5 ("sample a small
// random subset (e.g. 8 entries)").
const approximateSampleSize = 8

// cacheEntry pairs a compiled Expression with its approximate-recency
// token and the one-time guard that lets concurrent get_or_add calls for
// the same key block on a single compile instead of racing.
type cacheEntry struct {
	once   sync.Once
	expr   *Expression
	err    error
	recent uint64
}

// Cache is Shy's ApproximateLRUCache (spec section 4.5): a bounded map
// from source text to compiled Expression, trading exact LRU ordering for
// O(1) amortized recency bookkeeping. Capacity is fixed at construction.
// A single mutex serializes structural operations (insert/evict); the
// per-key sync.Once lets concurrent misses on the same key share one
// compile, the same singleflight idiom the teacher's parseStringCached
// uses for AST parsing.
//
// Eviction sampling draws from rng, a generator seeded once at
// construction from the package's auto-seeded source rather than shared
// globally, so concurrent Caches don't contend on one lock just to pick a
// sample (mirrors the original implementation's dedicated per-cache PRNG).
type Cache struct {
	mu       sync.Mutex
	capacity int
	clock    uint64
	entries  map[uint64]*cacheEntry
	order    []uint64
	rng      *rand.Rand
}

// NewCache constructs a Cache bounded to capacity entries. A non-positive
// capacity falls back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}

	return &Cache{
		capacity: capacity,
		entries:  make(map[uint64]*cacheEntry, capacity),
		order:    make([]uint64, 0, capacity),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// GetOrCompile returns the compiled Expression for source, compiling and
// inserting it on a miss, per spec section 4.5's get_or_add contract. The
// second return distinguishes a compile failure (*LexError/*ParseError)
// from success, mirroring Compile's own signature.
func (c *Cache) GetOrCompile(source string) (*Expression, error) {
	key := xxh3.HashString(source)

	c.mu.Lock()
	entry, hit := c.entries[key]
	if !hit {
		entry = &cacheEntry{}
		c.insert(key, entry)
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.expr, entry.err = Compile(source)
	})

	c.mu.Lock()
	c.clock++
	entry.recent = c.clock
	c.mu.Unlock()

	return entry.expr, entry.err
}

// insert adds entry under key, evicting an approximate-LRU victim first if
// the Cache is at capacity. Callers must hold c.mu.
func (c *Cache) insert(key uint64, entry *cacheEntry) {
	if len(c.entries) >= c.capacity {
		c.evictOneLocked()
	}

	c.entries[key] = entry
	c.order = append(c.order, key)
}

// evictOneLocked samples up to approximateSampleSize entries, drawn by
// index via c.rng, and removes the one with the oldest recency token, per
// spec section 4.5's approximate-LRU eviction policy. Callers must hold
// c.mu.
func (c *Cache) evictOneLocked() {
	n := len(c.order)
	if n == 0 {
		return
	}

	victimIdx, victimOld := -1, uint64(0)

	samples := approximateSampleSize
	if samples > n {
		samples = n
	}

	for i := 0; i < samples; i++ {
		idx := c.rng.IntN(n)
		key := c.order[idx]

		e, ok := c.entries[key]
		if !ok {
			continue
		}

		if victimIdx < 0 || e.recent < victimOld {
			victimIdx, victimOld = idx, e.recent
		}
	}

	if victimIdx < 0 {
		return
	}

	victimKey := c.order[victimIdx]
	delete(c.entries, victimKey)

	last := n - 1
	c.order[victimIdx] = c.order[last]
	c.order = c.order[:last]
}

// Len reports the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Clear removes all cached entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[uint64]*cacheEntry, c.capacity)
	c.order = c.order[:0]
}
