package chanpool

import "sync"

// Group keys pools by datasource and offers a process-wide invalidation
// entry point, which is what the redistributor acts through.
type Group struct {
	mu    sync.RWMutex
	pools map[string]*Pool
}

// NewGroup creates an empty pool group.
func NewGroup() *Group {
	return &Group{pools: make(map[string]*Pool)}
}

// GetOrCreate returns the pool for a datasource key, creating it on first
// use.
func (g *Group) GetOrCreate(key string, factory Factory, maxSize int) *Pool {
	g.mu.RLock()
	pool, ok := g.pools[key]
	g.mu.RUnlock()
	if ok {
		return pool
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if pool, ok := g.pools[key]; ok {
		return pool
	}
	pool = New(factory, maxSize)
	g.pools[key] = pool
	return pool
}

// Invalidate flags a connection in whichever pool owns it. Pools ignore
// unknown IDs, so fanning out is safe.
func (g *Group) Invalidate(connID int64) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, pool := range g.pools {
		pool.Invalidate(connID)
	}
}

// Close shuts down every pool in the group.
func (g *Group) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, pool := range g.pools {
		pool.Close()
	}
	g.pools = make(map[string]*Pool)
}
