// Package poolsize divides a configured connection-pool budget across the
// nodes currently in rotation so that aggregate capacity never exceeds the
// operator's intended bound. The coordinator only computes sizes; whichever
// component owns the backing pool applies them.
package poolsize

import (
	"sync"
	"sync/atomic"

	"github.com/anthanhphan/gosdk/logger"
	"github.com/spaolacci/murmur3"
)

// Allocation is the per-datasource share of the pool budget. ConnHash
// identifies the datasource; the current sizes are recomputed whenever the
// observed healthy node count changes.
type Allocation struct {
	ConnHash        uint64
	OriginalMaxSize int
	OriginalMinIdle int
	TotalNodes      int

	currentMaxSize atomic.Int64
	currentMinIdle atomic.Int64
}

// MaxSize returns the per-node max pool size under the current health view.
func (a *Allocation) MaxSize() int {
	return int(a.currentMaxSize.Load())
}

// MinIdle returns the per-node min-idle size under the current health view.
func (a *Allocation) MinIdle() int {
	return int(a.currentMinIdle.Load())
}

func (a *Allocation) recompute(healthyCount int) {
	if healthyCount < 1 {
		healthyCount = 1
	}
	a.currentMaxSize.Store(int64(ceilDiv(a.OriginalMaxSize, healthyCount)))
	a.currentMinIdle.Store(int64(ceilDiv(a.OriginalMinIdle, healthyCount)))
}

// Coordinator tracks allocations for every registered datasource and
// recomputes them on health changes.
type Coordinator struct {
	mu           sync.RWMutex
	allocations  map[uint64]*Allocation
	healthyCount int
}

// NewCoordinator creates a coordinator assuming all nodes healthy.
func NewCoordinator(totalNodes int) *Coordinator {
	return &Coordinator{
		allocations:  make(map[uint64]*Allocation),
		healthyCount: totalNodes,
	}
}

// Register adds a datasource identified by its connection string and returns
// its allocation, sized for the current health view. Registering the same
// datasource twice returns the existing allocation.
func (c *Coordinator) Register(datasource string, maxSize, minIdle, totalNodes int) *Allocation {
	hash := murmur3.Sum64([]byte(datasource))

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.allocations[hash]; ok {
		return existing
	}

	alloc := &Allocation{
		ConnHash:        hash,
		OriginalMaxSize: maxSize,
		OriginalMinIdle: minIdle,
		TotalNodes:      totalNodes,
	}
	alloc.recompute(c.healthyCount)
	c.allocations[hash] = alloc
	return alloc
}

// OnHealthyCountChange recomputes every allocation for the new healthy node
// count. No-op when the count did not actually change.
func (c *Coordinator) OnHealthyCountChange(healthyCount int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if healthyCount == c.healthyCount {
		return
	}
	c.healthyCount = healthyCount

	for _, alloc := range c.allocations {
		alloc.recompute(healthyCount)
		logger.Infow("Pool allocation resized",
			"conn_hash", alloc.ConnHash,
			"healthy_nodes", healthyCount,
			"max_size", alloc.MaxSize(),
			"min_idle", alloc.MinIdle())
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
