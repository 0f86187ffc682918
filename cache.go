package isomesh

import "sync"

// CachedField memoizes the samples of an expensive Field. Each interior
// sample is read by up to 8 cells during extraction so caching avoids
// repeated evaluation of procedural fields. It is safe for concurrent use.
type CachedField struct {
	mu     sync.Mutex      // lock the cache during reads/writes
	cache  map[V3i]float64 // cache of samples
	f      Field           // the field being cached
	size   V3i
	hits   int
	misses int
}

var _ Field = (*CachedField)(nil)

// NewCachedField returns a caching wrapper around f.
func NewCachedField(f Field) *CachedField {
	return &CachedField{
		f:     f,
		size:  f.Size(),
		cache: make(map[V3i]float64),
	}
}

// Size returns the extents of the underlying field.
func (c *CachedField) Size() V3i { return c.size }

// At returns the cached sample at (x,y,z), evaluating the underlying field
// on the first lookup.
func (c *CachedField) At(x, y, z int) float64 {
	vi := V3i{x, y, z}
	// do we have it in the cache?
	v, found := c.read(vi)
	if found {
		return v
	}
	v = c.f.At(x, y, z)
	c.write(vi, v)
	return v
}

// Stats returns the number of cache hits and misses so far.
func (c *CachedField) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// read from the cache
func (c *CachedField) read(vi V3i) (float64, bool) {
	c.mu.Lock()
	v, found := c.cache[vi]
	if found {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()
	return v, found
}

// write to the cache
func (c *CachedField) write(vi V3i, v float64) {
	c.mu.Lock()
	c.cache[vi] = v
	c.mu.Unlock()
}
