package preview

import "sync"

// Cache is a bounded in-memory store of encoded thumbnails. When full, the
// oldest entry is evicted first.
type Cache struct {
	mu    sync.Mutex
	limit int
	data  map[string][]byte
	order []string
}

// NewCache creates a cache holding at most limit entries.
func NewCache(limit int) *Cache {
	if limit < 1 {
		limit = 1
	}
	return &Cache{limit: limit, data: make(map[string][]byte, limit)}
}

// Get returns the entry stored under key.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	return b, ok
}

// Put stores data under key. Re-putting an existing key keeps its position.
func (c *Cache) Put(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		c.data[key] = data
		return
	}
	for len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.data, oldest)
	}
	c.data[key] = data
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}
