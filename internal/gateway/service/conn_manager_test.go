package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anthanhphan/go-database-proxy/internal/gateway/port"
	"github.com/anthanhphan/go-database-proxy/pkg/cluster"
	proxyv1 "github.com/anthanhphan/go-database-proxy/proto/gen/proxy/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeProxyNode struct {
	connectFn    func(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error)
	executeFn    func(ctx context.Context, addr string, sessionKey string, payload []byte) (*proxyv1.ExecuteResponse, error)
	disconnectFn func(ctx context.Context, addr string, sessionKey string) error
	pingFn       func(ctx context.Context, addr string) error
}

func (f *fakeProxyNode) Connect(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
	return f.connectFn(ctx, addr, details)
}

func (f *fakeProxyNode) Execute(ctx context.Context, addr string, sessionKey string, payload []byte) (*proxyv1.ExecuteResponse, error) {
	if f.executeFn == nil {
		return nil, errors.New("not implemented")
	}
	return f.executeFn(ctx, addr, sessionKey, payload)
}

func (f *fakeProxyNode) Disconnect(ctx context.Context, addr string, sessionKey string) error {
	if f.disconnectFn == nil {
		return nil
	}
	return f.disconnectFn(ctx, addr, sessionKey)
}

func (f *fakeProxyNode) Ping(ctx context.Context, addr string) error {
	if f.pingFn == nil {
		return nil
	}
	return f.pingFn(ctx, addr)
}

func (f *fakeProxyNode) Close() {}

func newManagerFixture(node port.ProxyNode, retryDelay time.Duration) (*ConnManager, *cluster.Directory) {
	dir := cluster.NewDirectory([]*cluster.Node{
		cluster.NewNode("10.0.0.1", 9091, "proxy-1"),
		cluster.NewNode("10.0.0.2", 9091, "proxy-2"),
		cluster.NewNode("10.0.0.3", 9091, "proxy-3"),
	})
	table := cluster.NewRoutingTable(dir)
	health := cluster.NewHealthTracker(dir, func(ctx context.Context, n *cluster.Node) error {
		return node.Ping(ctx, n.Addr())
	}, retryDelay, time.Second)
	return NewConnManager(dir, table, health, node, time.Second), dir
}

func TestEstablishSessionBindsSelfReportedIdentity(t *testing.T) {
	node := &fakeProxyNode{
		connectFn: func(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
			if addr != "10.0.0.1:9091" {
				return nil, status.Error(codes.Unavailable, "connection refused")
			}
			// The node answered on one address but identifies itself by
			// another directory entry.
			return &proxyv1.ConnectResponse{
				SessionKey:    "session-1",
				SelfHost:      "10.0.0.2",
				SelfPort:      9091,
				DatasourceKey: "ds-1",
			}, nil
		},
		pingFn: func(ctx context.Context, addr string) error {
			return status.Error(codes.Unavailable, "still down")
		},
	}

	manager, _ := newManagerFixture(node, time.Hour)

	session, err := manager.EstablishSession(context.Background(), port.ConnectDetails{Datasource: "db"})
	if err != nil {
		t.Fatalf("establish failed: %v", err)
	}
	if session.Node != "10.0.0.2:9091" {
		t.Fatalf("bound to %s, expected the self-reported identity", session.Node)
	}

	bound, ok := manager.table.Bound("session-1")
	if !ok || bound.Addr() != "10.0.0.2:9091" {
		t.Fatalf("routing table binding = %v, %v", bound, ok)
	}
}

func TestEstablishSessionFallsBackToAnsweringEndpoint(t *testing.T) {
	node := &fakeProxyNode{
		connectFn: func(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
			if addr != "10.0.0.3:9091" {
				return nil, status.Error(codes.Unavailable, "connection refused")
			}
			// No self identity in the reply.
			return &proxyv1.ConnectResponse{SessionKey: "session-2"}, nil
		},
		pingFn: func(ctx context.Context, addr string) error {
			return status.Error(codes.Unavailable, "still down")
		},
	}

	manager, _ := newManagerFixture(node, time.Hour)

	session, err := manager.EstablishSession(context.Background(), port.ConnectDetails{Datasource: "db"})
	if err != nil {
		t.Fatalf("establish failed: %v", err)
	}
	if session.Node != "10.0.0.3:9091" {
		t.Fatalf("bound to %s, expected the answering endpoint", session.Node)
	}
}

func TestEstablishSessionAllNodesFail(t *testing.T) {
	node := &fakeProxyNode{
		connectFn: func(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
			return nil, status.Error(codes.Unavailable, "connection refused")
		},
		pingFn: func(ctx context.Context, addr string) error {
			return status.Error(codes.Unavailable, "still down")
		},
	}

	manager, dir := newManagerFixture(node, time.Hour)

	_, err := manager.EstablishSession(context.Background(), port.ConnectDetails{Datasource: "db"})
	if err == nil {
		t.Fatalf("expected establish failure")
	}
	if !strings.Contains(err.Error(), "failed to establish session on any node") {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, n := range dir.Nodes() {
		if n.Healthy() {
			t.Fatalf("node %s still in rotation after connectivity failure", n.Addr())
		}
	}
}

func TestRouteRecoversWhenNothingInRotation(t *testing.T) {
	node := &fakeProxyNode{
		connectFn: func(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
			return nil, status.Error(codes.Unavailable, "connection refused")
		},
		pingFn: func(ctx context.Context, addr string) error {
			return nil // everything is reachable again
		},
	}

	manager, dir := newManagerFixture(node, time.Millisecond)
	for _, n := range dir.Nodes() {
		manager.ReportFailure(n, status.Error(codes.Unavailable, "connection refused"))
	}
	time.Sleep(5 * time.Millisecond)

	routed, err := manager.Route(context.Background(), "")
	if err != nil {
		t.Fatalf("route failed after recovery sweep: %v", err)
	}
	if !routed.Healthy() {
		t.Fatalf("routed to an out-of-rotation node")
	}
}

func TestRouteNoHealthyNodes(t *testing.T) {
	node := &fakeProxyNode{
		connectFn: func(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
			return nil, status.Error(codes.Unavailable, "connection refused")
		},
		pingFn: func(ctx context.Context, addr string) error {
			return status.Error(codes.Unavailable, "still down")
		},
	}

	manager, dir := newManagerFixture(node, time.Millisecond)
	for _, n := range dir.Nodes() {
		manager.ReportFailure(n, status.Error(codes.Unavailable, "connection refused"))
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := manager.Route(context.Background(), ""); !errors.Is(err, cluster.ErrNoHealthyNodes) {
		t.Fatalf("expected ErrNoHealthyNodes, got %v", err)
	}
}

func TestTerminateSessionUnknownKey(t *testing.T) {
	node := &fakeProxyNode{}
	manager, _ := newManagerFixture(node, time.Hour)

	if err := manager.TerminateSession(context.Background(), "nope"); !errors.Is(err, port.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestTerminateSessionEvictsAndDisconnects(t *testing.T) {
	var disconnected []string
	node := &fakeProxyNode{
		disconnectFn: func(ctx context.Context, addr string, sessionKey string) error {
			disconnected = append(disconnected, addr+"/"+sessionKey)
			return nil
		},
	}

	manager, dir := newManagerFixture(node, time.Hour)
	manager.table.Bind("session-1", dir.Nodes()[0])

	if err := manager.TerminateSession(context.Background(), "session-1"); err != nil {
		t.Fatalf("terminate failed: %v", err)
	}
	if _, ok := manager.table.Bound("session-1"); ok {
		t.Fatalf("binding survived termination")
	}
	if len(disconnected) != 1 || disconnected[0] != "10.0.0.1:9091/session-1" {
		t.Fatalf("unexpected disconnects: %v", disconnected)
	}
}

func TestHealthSnapshotFormat(t *testing.T) {
	node := &fakeProxyNode{
		pingFn: func(ctx context.Context, addr string) error {
			return status.Error(codes.Unavailable, "still down")
		},
	}
	manager, dir := newManagerFixture(node, time.Hour)
	manager.ReportFailure(dir.Nodes()[1], status.Error(codes.Unavailable, "connection refused"))

	expected := "10.0.0.1:9091(UP);10.0.0.2:9091(DOWN);10.0.0.3:9091(UP)"
	if got := manager.HealthSnapshot(); got != expected {
		t.Fatalf("snapshot = %q, expected %q", got, expected)
	}
}
