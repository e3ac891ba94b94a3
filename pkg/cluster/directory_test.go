package cluster

import (
	"testing"
	"time"
)

func TestDirectoryCollapsesDuplicates(t *testing.T) {
	dir := NewDirectory([]*Node{
		NewNode("10.0.0.1", 9091, "proxy-1"),
		NewNode("10.0.0.1", 9091, "proxy-1-dup"),
		NewNode("10.0.0.2", 9091, "proxy-2"),
	})

	if dir.Size() != 2 {
		t.Fatalf("expected 2 nodes, got %d", dir.Size())
	}
	n, ok := dir.Lookup("10.0.0.1:9091")
	if !ok || n.Name != "proxy-1" {
		t.Fatalf("expected first occurrence to win, got %+v", n)
	}
}

func TestDirectorySnapshot(t *testing.T) {
	dir := NewDirectory([]*Node{
		NewNode("10.0.0.1", 9091, "proxy-1"),
		NewNode("10.0.0.2", 9091, "proxy-2"),
	})
	dir.Nodes()[1].markUnhealthy(time.Now())

	expected := "10.0.0.1:9091(UP);10.0.0.2:9091(DOWN)"
	if got := dir.Snapshot(); got != expected {
		t.Fatalf("snapshot = %q, expected %q", got, expected)
	}
}
