package idea

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// CipherCache keeps recently used ciphers so that repeated operations under
// the same key skip schedule derivation. Cached ciphers are immutable and the
// ARC cache synchronizes itself, so a CipherCache is safe for concurrent use.
type CipherCache struct {
	cache *lru.ARCCache
	opts  []Option
}

// NewCipherCache returns a cache holding up to size ciphers built with opts.
// A size of zero disables caching: every Get derives a fresh cipher.
func NewCipherCache(size int, opts ...Option) (*CipherCache, error) {
	if size < 0 {
		return nil, fmt.Errorf("idea: negative cache size %d", size)
	}
	c := &CipherCache{opts: opts}
	if size == 0 {
		return c, nil
	}
	cache, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("idea: failed to create cipher cache: %w", err)
	}
	c.cache = cache
	return c, nil
}

// Get returns the cipher for key and whether it was served from the cache.
func (c *CipherCache) Get(key Key) (*Cipher, bool) {
	if c.cache == nil {
		return New(key, c.opts...), false
	}
	if v, ok := c.cache.Get(key); ok {
		return v.(*Cipher), true
	}
	ci := New(key, c.opts...)
	c.cache.Add(key, ci)
	return ci, false
}

// Len returns the number of cached ciphers.
func (c *CipherCache) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
