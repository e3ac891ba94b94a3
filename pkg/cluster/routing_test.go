package cluster

import (
	"errors"
	"testing"
	"time"
)

func threeNodeDirectory() *Directory {
	return NewDirectory([]*Node{
		NewNode("10.0.0.1", 9091, "proxy-1"),
		NewNode("10.0.0.2", 9091, "proxy-2"),
		NewNode("10.0.0.3", 9091, "proxy-3"),
	})
}

func TestRouteStickyUnknownKey(t *testing.T) {
	table := NewRoutingTable(threeNodeDirectory())

	_, err := table.RouteSticky("never-bound")
	if !errors.Is(err, ErrSessionNotBound) {
		t.Fatalf("expected ErrSessionNotBound, got %v", err)
	}
}

func TestRouteStickyAlwaysReturnsBoundNode(t *testing.T) {
	dir := threeNodeDirectory()
	table := NewRoutingTable(dir)
	bound := dir.Nodes()[1]
	table.Bind("session-1", bound)

	// Advance the shared cursor; the sticky route must not care.
	for i := 0; i < 7; i++ {
		table.NextRoundRobin()
	}

	for i := 0; i < 5; i++ {
		node, err := table.RouteSticky("session-1")
		if err != nil {
			t.Fatalf("sticky route failed: %v", err)
		}
		if node != bound {
			t.Fatalf("sticky route returned %s, expected %s", node.Addr(), bound.Addr())
		}
	}
}

func TestRouteStickyEvictsWhenBoundNodeDown(t *testing.T) {
	dir := threeNodeDirectory()
	table := NewRoutingTable(dir)
	bound := dir.Nodes()[0]
	table.Bind("session-1", bound)

	bound.markUnhealthy(time.Now())

	_, err := table.RouteSticky("session-1")
	if !errors.Is(err, ErrBoundNodeUnavailable) {
		t.Fatalf("expected ErrBoundNodeUnavailable, got %v", err)
	}
	if _, ok := table.Bound("session-1"); ok {
		t.Fatalf("binding survived eviction")
	}

	// The key is now unknown, never silently rebound.
	_, err = table.RouteSticky("session-1")
	if !errors.Is(err, ErrSessionNotBound) {
		t.Fatalf("expected ErrSessionNotBound after eviction, got %v", err)
	}
}

func TestNextRoundRobinFairness(t *testing.T) {
	dir := threeNodeDirectory()
	table := NewRoutingTable(dir)

	counts := map[string]int{}
	for i := 0; i < 300; i++ {
		node, ok := table.NextRoundRobin()
		if !ok {
			t.Fatalf("round robin returned no node with all nodes healthy")
		}
		counts[node.Addr()]++
	}

	for _, n := range dir.Nodes() {
		if counts[n.Addr()] != 100 {
			t.Fatalf("uneven distribution: %v", counts)
		}
	}
}

func TestNextRoundRobinSkipsUnhealthy(t *testing.T) {
	dir := threeNodeDirectory()
	table := NewRoutingTable(dir)
	down := dir.Nodes()[1]
	down.markUnhealthy(time.Now())

	for i := 0; i < 50; i++ {
		node, ok := table.NextRoundRobin()
		if !ok {
			t.Fatalf("round robin returned no node with two nodes healthy")
		}
		if node == down {
			t.Fatalf("round robin selected an out-of-rotation node")
		}
	}
}

func TestNextRoundRobinAllDown(t *testing.T) {
	dir := threeNodeDirectory()
	table := NewRoutingTable(dir)
	for _, n := range dir.Nodes() {
		n.markUnhealthy(time.Now())
	}

	if _, ok := table.NextRoundRobin(); ok {
		t.Fatalf("expected no node with the whole cluster down")
	}
}
