package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counters is a named set of int64 counters
// Lookup takes a lock on first use; callers keep the returned pointer for lock-free updates
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewCounters creates an empty counter set
func NewCounters() *Counters {
	return &Counters{items: make(map[string]*atomic.Int64)}
}

// Get returns the counter for name, creating it at zero
func (c *Counters) Get(name string) *atomic.Int64 {
	c.mu.RLock()
	ptr, ok := c.items[name]
	c.mu.RUnlock()
	if ok {
		return ptr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ptr, ok := c.items[name]; ok {
		return ptr
	}
	ptr = new(atomic.Int64)
	c.items[name] = ptr
	return ptr
}

// Range visits counters in name order
func (c *Counters) Range(fn func(name string, value int64)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fn(name, c.items[name].Load())
	}
}

// Len returns the number of registered counters
func (c *Counters) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
