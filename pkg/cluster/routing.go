package cluster

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrSessionNotBound reports a sticky key that was never bound. The caller
	// believes it holds a session, so falling back to round-robin here would
	// hide a protocol violation.
	ErrSessionNotBound = errors.New("session key is not bound to any node")

	// ErrBoundNodeUnavailable reports a sticky key whose bound node left
	// rotation. The binding is evicted and the error surfaced; rebinding to a
	// different node would split in-flight transactional work across nodes.
	ErrBoundNodeUnavailable = errors.New("node bound to session key is unavailable")
)

// RoutingTable holds the sticky-session bindings and the shared round-robin
// cursor for unbound work. All methods are safe for concurrent use.
type RoutingTable struct {
	dir      *Directory
	bindings sync.Map // session key -> *Node
	cursor   atomic.Uint64
}

// NewRoutingTable creates an empty routing table over the directory.
func NewRoutingTable(dir *Directory) *RoutingTable {
	return &RoutingTable{dir: dir}
}

// Bind maps a session key to its owning node. A bind is visible to Bound
// calls from any goroutine once it returns.
func (t *RoutingTable) Bind(sessionKey string, node *Node) {
	t.bindings.Store(sessionKey, node)
}

// Bound looks up the node a session key is bound to.
func (t *RoutingTable) Bound(sessionKey string) (*Node, bool) {
	v, ok := t.bindings.Load(sessionKey)
	if !ok {
		return nil, false
	}
	return v.(*Node), true
}

// Evict removes a session binding. Safe to call for unknown keys.
func (t *RoutingTable) Evict(sessionKey string) {
	t.bindings.Delete(sessionKey)
}

// RouteSticky resolves a non-empty session key per the stickiness contract:
// unknown keys fail with ErrSessionNotBound, keys bound to an out-of-rotation
// node are evicted and fail with ErrBoundNodeUnavailable.
func (t *RoutingTable) RouteSticky(sessionKey string) (*Node, error) {
	node, ok := t.Bound(sessionKey)
	if !ok {
		return nil, ErrSessionNotBound
	}
	if !node.Healthy() {
		t.Evict(sessionKey)
		return nil, ErrBoundNodeUnavailable
	}
	return node, nil
}

// NextRoundRobin picks the next healthy node for unbound work. Selection is
// cursor mod healthy-count; the cursor wraps freely, and interleavings under
// race may skip or repeat a node, which is acceptable for approximate balance.
func (t *RoutingTable) NextRoundRobin() (*Node, bool) {
	healthy := t.dir.HealthyNodes()
	if len(healthy) == 0 {
		return nil, false
	}
	idx := t.cursor.Add(1) % uint64(len(healthy))
	return healthy[idx], true
}

// BindingCount reports the number of live session bindings.
func (t *RoutingTable) BindingCount() int {
	count := 0
	t.bindings.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
