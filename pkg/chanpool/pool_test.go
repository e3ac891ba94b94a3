package chanpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeResource struct {
	id     int64
	closed atomic.Bool
}

func (f *fakeResource) ID() int64 { return f.id }

func (f *fakeResource) Close() error {
	f.closed.Store(true)
	return nil
}

func sequentialFactory() (Factory, *atomic.Int64) {
	var next atomic.Int64
	return func(ctx context.Context) (Resource, error) {
		return &fakeResource{id: next.Add(1)}, nil
	}, &next
}

func TestAcquireReusesIdleConnection(t *testing.T) {
	factory, created := sequentialFactory()
	pool := New(factory, 4)
	defer pool.Close()

	conn, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	pool.Release(conn)

	again, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("second acquire failed: %v", err)
	}
	defer pool.Release(again)

	if created.Load() != 1 {
		t.Fatalf("expected one dial, got %d", created.Load())
	}
	if again.ID() != conn.ID() {
		t.Fatalf("idle connection not reused")
	}
}

func TestInvalidatedIdleConnectionIsLazilyReplaced(t *testing.T) {
	factory, created := sequentialFactory()
	pool := New(factory, 4)
	defer pool.Close()

	conn, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	res := conn.Resource().(*fakeResource)
	pool.Release(conn)

	pool.Invalidate(conn.ID())

	replacement, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire after invalidation failed: %v", err)
	}
	defer pool.Release(replacement)

	if replacement.ID() == conn.ID() {
		t.Fatalf("invalidated connection was handed out again")
	}
	if !res.closed.Load() {
		t.Fatalf("invalidated connection was not closed on replacement")
	}
	if created.Load() != 2 {
		t.Fatalf("expected a replacement dial, got %d dials", created.Load())
	}
	if pool.Size() != 1 {
		t.Fatalf("pool size = %d, expected 1", pool.Size())
	}
}

func TestInvalidatedInFlightConnectionFinishesItsWork(t *testing.T) {
	factory, _ := sequentialFactory()
	pool := New(factory, 4)
	defer pool.Close()

	conn, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}

	// Invalidation while checked out never interrupts the holder.
	pool.Invalidate(conn.ID())
	res := conn.Resource().(*fakeResource)
	if res.closed.Load() {
		t.Fatalf("in-flight connection closed by invalidation")
	}

	// It is discarded on release instead of re-queued.
	pool.Release(conn)
	if !res.closed.Load() {
		t.Fatalf("invalid connection survived release")
	}
	if pool.Size() != 0 {
		t.Fatalf("pool size = %d after discard, expected 0", pool.Size())
	}
}

func TestAcquireBlocksAtCapacity(t *testing.T) {
	factory, _ := sequentialFactory()
	pool := New(factory, 1)
	defer pool.Close()

	conn, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	defer pool.Release(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := pool.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded at capacity, got %v", err)
	}
}

func TestAcquireAfterClose(t *testing.T) {
	factory, _ := sequentialFactory()
	pool := New(factory, 1)
	pool.Close()

	if _, err := pool.Acquire(context.Background()); !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestGroupInvalidateFansOut(t *testing.T) {
	factory, _ := sequentialFactory()
	group := NewGroup()
	defer group.Close()

	poolA := group.GetOrCreate("db-a", factory, 2)
	poolB := group.GetOrCreate("db-b", factory, 2)
	if group.GetOrCreate("db-a", factory, 2) != poolA {
		t.Fatalf("GetOrCreate returned a different pool for the same key")
	}

	conn, err := poolB.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	poolB.Release(conn)

	// The group does not know which pool owns the ID; every pool is asked.
	group.Invalidate(conn.ID())

	replacement, err := poolB.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire after group invalidation failed: %v", err)
	}
	defer poolB.Release(replacement)
	if replacement.ID() == conn.ID() {
		t.Fatalf("group invalidation did not reach the owning pool")
	}
}
