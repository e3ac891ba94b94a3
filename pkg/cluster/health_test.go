package cluster

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsConnectivityError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "grpc unavailable", err: status.Error(codes.Unavailable, "connection refused"), want: true},
		{name: "grpc deadline", err: status.Error(codes.DeadlineExceeded, "timeout"), want: true},
		{name: "context deadline", err: context.DeadlineExceeded, want: true},
		{name: "grpc not found", err: status.Error(codes.NotFound, "no such table"), want: false},
		{name: "grpc invalid argument", err: status.Error(codes.InvalidArgument, "bad statement"), want: false},
		{name: "grpc unknown with transport text", err: status.Error(codes.Unknown, "connection reset by peer"), want: true},
		{name: "grpc unknown application", err: status.Error(codes.Unknown, "duplicate key violates unique constraint"), want: false},
		{name: "plain refused", err: errors.New("dial tcp 10.0.0.1:9091: connection refused"), want: true},
		{name: "plain application", err: errors.New("syntax error at or near SELECT"), want: false},
		{name: "wrapped refused", err: fmt.Errorf("execute: %w", errors.New("broken pipe")), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsConnectivityError(tc.err); got != tc.want {
				t.Fatalf("IsConnectivityError(%v) = %v, expected %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestReportFailureClassifies(t *testing.T) {
	dir := threeNodeDirectory()
	tracker := NewHealthTracker(dir, func(ctx context.Context, n *Node) error { return nil }, time.Hour, time.Second)
	node := dir.Nodes()[0]

	tracker.ReportFailure(node, status.Error(codes.InvalidArgument, "bad statement"))
	if !node.Healthy() {
		t.Fatalf("application error took node out of rotation")
	}

	tracker.ReportFailure(node, status.Error(codes.Unavailable, "connection refused"))
	if node.Healthy() {
		t.Fatalf("connectivity error left node in rotation")
	}
	if node.LastFailure().IsZero() {
		t.Fatalf("last failure timestamp not recorded")
	}
}

func TestRecoverDueRestoresNode(t *testing.T) {
	dir := threeNodeDirectory()

	var probes atomic.Int32
	tracker := NewHealthTracker(dir, func(ctx context.Context, n *Node) error {
		probes.Add(1)
		return nil
	}, time.Millisecond, time.Second)

	var hookRecovered []*Node
	var hookHealthy int
	tracker.OnRecovered(func(recovered []*Node, healthyCount int) {
		hookRecovered = recovered
		hookHealthy = healthyCount
	})

	node := dir.Nodes()[2]
	tracker.ReportFailure(node, status.Error(codes.Unavailable, "connection refused"))
	time.Sleep(5 * time.Millisecond)

	if got := tracker.RecoverDue(context.Background()); got != 1 {
		t.Fatalf("RecoverDue = %d, expected 1", got)
	}
	if !node.Healthy() {
		t.Fatalf("node not back in rotation after successful probe")
	}
	if probes.Load() != 1 {
		t.Fatalf("expected exactly one probe, got %d", probes.Load())
	}
	if len(hookRecovered) != 1 || hookRecovered[0] != node {
		t.Fatalf("recovery hook got %v", hookRecovered)
	}
	if hookHealthy != 3 {
		t.Fatalf("recovery hook healthy count = %d, expected 3", hookHealthy)
	}
}

func TestRecoverDueRespectsRetryDelay(t *testing.T) {
	dir := threeNodeDirectory()

	var probes atomic.Int32
	tracker := NewHealthTracker(dir, func(ctx context.Context, n *Node) error {
		probes.Add(1)
		return nil
	}, time.Hour, time.Second)

	node := dir.Nodes()[0]
	tracker.ReportFailure(node, status.Error(codes.Unavailable, "connection refused"))

	if got := tracker.RecoverDue(context.Background()); got != 0 {
		t.Fatalf("RecoverDue = %d before retry delay elapsed, expected 0", got)
	}
	if probes.Load() != 0 {
		t.Fatalf("node probed before retry delay elapsed")
	}
	if node.Healthy() {
		t.Fatalf("node rejoined rotation without a probe")
	}
}

func TestFailedProbeExtendsUnhealthyPeriod(t *testing.T) {
	dir := threeNodeDirectory()
	tracker := NewHealthTracker(dir, func(ctx context.Context, n *Node) error {
		return status.Error(codes.Unavailable, "still down")
	}, time.Millisecond, time.Second)

	node := dir.Nodes()[0]
	tracker.ReportFailure(node, status.Error(codes.Unavailable, "connection refused"))
	before := node.LastFailure()
	time.Sleep(5 * time.Millisecond)

	if got := tracker.RecoverDue(context.Background()); got != 0 {
		t.Fatalf("RecoverDue = %d with failing probe, expected 0", got)
	}
	if node.Healthy() {
		t.Fatalf("node rejoined rotation despite failing probe")
	}
	if !node.LastFailure().After(before) {
		t.Fatalf("failed probe did not refresh the failure timestamp")
	}
}

func TestMarkRecoveredFiresHook(t *testing.T) {
	dir := threeNodeDirectory()
	tracker := NewHealthTracker(dir, func(ctx context.Context, n *Node) error { return nil }, time.Hour, time.Second)

	fired := 0
	tracker.OnRecovered(func(recovered []*Node, healthyCount int) { fired++ })

	node := dir.Nodes()[1]
	tracker.ReportFailure(node, status.Error(codes.Unavailable, "connection refused"))
	tracker.MarkRecovered(node)

	if !node.Healthy() {
		t.Fatalf("node not healthy after MarkRecovered")
	}
	if fired != 1 {
		t.Fatalf("recovery hook fired %d times, expected 1", fired)
	}

	// Already healthy: no state change, no hook.
	tracker.MarkRecovered(node)
	if fired != 1 {
		t.Fatalf("recovery hook fired for a node already in rotation")
	}
}
