package cluster

import (
	"sync"
	"sync/atomic"
	"time"
)

// TrackedConn records one live logical connection anchored to a node,
// independent of any sticky session riding on it. The redistributor uses
// these records to pick rebalance victims; routing never consults them.
type TrackedConn struct {
	ID       int64
	Node     *Node
	lastUsed atomic.Int64 // unix milliseconds
}

// Touch refreshes the last-used timestamp.
func (c *TrackedConn) Touch() {
	c.lastUsed.Store(time.Now().UnixMilli())
}

// LastUsed returns the last time the connection carried work.
func (c *TrackedConn) LastUsed() time.Time {
	return time.UnixMilli(c.lastUsed.Load())
}

// ConnTracker is the registry of live logical connections per node.
// All methods are safe for concurrent use.
type ConnTracker struct {
	conns sync.Map // connection ID -> *TrackedConn
}

// NewConnTracker creates an empty tracker.
func NewConnTracker() *ConnTracker {
	return &ConnTracker{}
}

// Track registers a connection against the node it was established on.
func (t *ConnTracker) Track(id int64, node *Node) *TrackedConn {
	conn := &TrackedConn{ID: id, Node: node}
	conn.Touch()
	t.conns.Store(id, conn)
	return conn
}

// Forget drops a closed connection from the registry.
func (t *ConnTracker) Forget(id int64) {
	t.conns.Delete(id)
}

// Touch refreshes the last-used timestamp of a tracked connection.
func (t *ConnTracker) Touch(id int64) {
	if v, ok := t.conns.Load(id); ok {
		v.(*TrackedConn).Touch()
	}
}

// Total returns the number of tracked connections across all nodes.
func (t *ConnTracker) Total() int {
	count := 0
	t.conns.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// ByNode groups tracked connections by node address.
func (t *ConnTracker) ByNode() map[string][]*TrackedConn {
	grouped := make(map[string][]*TrackedConn)
	t.conns.Range(func(_, v any) bool {
		conn := v.(*TrackedConn)
		addr := conn.Node.Addr()
		grouped[addr] = append(grouped[addr], conn)
		return true
	})
	return grouped
}
