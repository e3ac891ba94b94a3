// Package chanpool implements the backing pool of logical proxy connections.
// The pool hands out pooled connections, checks their validity on acquire,
// and lazily replaces connections that were marked invalid — the mechanism
// the redistributor relies on to move load without interrupting in-flight
// work.
package chanpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrPoolClosed    = errors.New("connection pool is closed")
	ErrPoolExhausted = errors.New("connection pool exhausted")
)

// Resource is one logical connection owned by the pool. ID must be unique
// across the process; Close releases the remote side.
type Resource interface {
	ID() int64
	Close() error
}

// Factory establishes a new logical connection. It is invoked outside the
// pool's lock and must honor ctx cancellation.
type Factory func(ctx context.Context) (Resource, error)

// PooledConn wraps a Resource with validity state.
type PooledConn struct {
	res      Resource
	invalid  atomic.Bool
	lastUsed atomic.Int64
}

// ID returns the wrapped resource's connection ID.
func (c *PooledConn) ID() int64 {
	return c.res.ID()
}

// Resource exposes the wrapped logical connection.
func (c *PooledConn) Resource() Resource {
	return c.res
}

// Invalidate flags the connection for lazy replacement. The connection keeps
// working until its next validity check.
func (c *PooledConn) Invalidate() {
	c.invalid.Store(true)
}

// IsValid reports whether the connection may be handed out again.
func (c *PooledConn) IsValid() bool {
	return !c.invalid.Load()
}

func (c *PooledConn) touch() {
	c.lastUsed.Store(time.Now().UnixMilli())
}

// Pool is a fixed-capacity pool of logical connections for one datasource.
type Pool struct {
	factory Factory

	mu     sync.Mutex
	idle   []*PooledConn
	all    map[int64]*PooledConn
	slots  chan struct{}
	closed bool
}

// New creates a pool that will hold at most maxSize live connections.
func New(factory Factory, maxSize int) *Pool {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &Pool{
		factory: factory,
		all:     make(map[int64]*PooledConn),
		slots:   make(chan struct{}, maxSize),
	}
}

// Acquire returns a valid pooled connection, discarding and replacing any
// idle connection that failed its validity check. Blocks until a slot is
// free or ctx is done.
func (p *Pool) Acquire(ctx context.Context) (*PooledConn, error) {
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return nil, ErrPoolClosed
		}
		var conn *PooledConn
		if n := len(p.idle); n > 0 {
			conn = p.idle[n-1]
			p.idle = p.idle[:n-1]
		}
		p.mu.Unlock()

		if conn == nil {
			break
		}
		if conn.IsValid() {
			conn.touch()
			return conn, nil
		}
		// Invalidated while idle: discard and recreate. The replacement is
		// routed through the regular entry point by the factory.
		p.discard(conn)
	}

	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	res, err := p.factory(ctx)
	if err != nil {
		<-p.slots
		return nil, err
	}

	conn := &PooledConn{res: res}
	conn.touch()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.slots
		_ = res.Close()
		return nil, ErrPoolClosed
	}
	p.all[conn.ID()] = conn
	p.mu.Unlock()

	return conn, nil
}

// Release returns a connection to the pool. Invalid connections are discarded
// instead of re-queued.
func (p *Pool) Release(conn *PooledConn) {
	if conn == nil {
		return
	}
	if !conn.IsValid() {
		p.discard(conn)
		return
	}
	conn.touch()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.discard(conn)
		return
	}
	p.idle = append(p.idle, conn)
	p.mu.Unlock()
}

// Invalidate flags the identified connection for lazy replacement. Unknown
// IDs are ignored.
func (p *Pool) Invalidate(connID int64) {
	p.mu.Lock()
	conn, ok := p.all[connID]
	p.mu.Unlock()
	if ok {
		conn.Invalidate()
	}
}

// Size reports the number of live connections owned by the pool.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.all)
}

// Close discards every connection and rejects further acquires.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	conns := make([]*PooledConn, 0, len(p.all))
	for _, c := range p.all {
		conns = append(conns, c)
	}
	p.all = make(map[int64]*PooledConn)
	p.idle = nil
	p.mu.Unlock()

	for _, c := range conns {
		_ = c.res.Close()
		<-p.slots
	}
}

func (p *Pool) discard(conn *PooledConn) {
	p.mu.Lock()
	_, owned := p.all[conn.ID()]
	delete(p.all, conn.ID())
	p.mu.Unlock()

	_ = conn.res.Close()
	if owned {
		<-p.slots
	}
}
