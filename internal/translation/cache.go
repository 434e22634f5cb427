package translation

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"

	"github.com/valpere/bhasha/internal"
	"github.com/valpere/bhasha/internal/language"
)

// Key identifies a memoized translation. The credential is kept as a
// SHA-256 fingerprint so the raw key is not duplicated into the cache.
type Key struct {
	Credential string
	Text       string
	Language   language.Language
	Model      string
}

func NewKey(req internal.TranslationRequest) Key {
	sum := sha256.Sum256([]byte(req.APIKey))
	return Key{
		Credential: hex.EncodeToString(sum[:]),
		Text:       req.SourceText,
		Language:   req.TargetLanguage,
		Model:      req.Model,
	}
}

// CacheStats reports cache usage.
type CacheStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Cache memoizes successful translations for the lifetime of the process.
// Entries are never evicted. It is safe for concurrent use; two callers
// missing on the same key both compute and the last Put wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]string
	hits    atomic.Int64
	misses  atomic.Int64
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]string)}
}

func (c *Cache) Get(k Key) (string, bool) {
	c.mu.RLock()
	v, ok := c.entries[k]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

func (c *Cache) Put(k Key, v string) {
	c.mu.Lock()
	c.entries[k] = v
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
