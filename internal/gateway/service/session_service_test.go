package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anthanhphan/go-database-proxy/internal/gateway/config"
	"github.com/anthanhphan/go-database-proxy/internal/gateway/port"
	"github.com/anthanhphan/go-database-proxy/internal/gateway/service/mocks"
	"github.com/anthanhphan/go-database-proxy/pkg/chanpool"
	"github.com/anthanhphan/go-database-proxy/pkg/cluster"
	proxyv1 "github.com/anthanhphan/go-database-proxy/proto/gen/proxy/v1"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeIDGenerator struct {
	next atomic.Int64
}

func (f *fakeIDGenerator) Next() (int64, error) {
	return f.next.Add(1), nil
}

func newServiceFixture(t *testing.T, node port.ProxyNode) (*SessionService, *cluster.Directory) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.App.MaxRetries = 3
	cfg.Cluster.Nodes = []config.NodeConfig{
		{Host: "10.0.0.1", Port: 9091, Name: "proxy-1"},
		{Host: "10.0.0.2", Port: 9091, Name: "proxy-2"},
	}

	nodes := make([]*cluster.Node, 0, len(cfg.Cluster.Nodes))
	for _, nc := range cfg.Cluster.Nodes {
		nodes = append(nodes, cluster.NewNode(nc.Host, nc.Port, nc.Name))
	}
	dir := cluster.NewDirectory(nodes)
	table := cluster.NewRoutingTable(dir)
	health := cluster.NewHealthTracker(dir, func(ctx context.Context, n *cluster.Node) error {
		return node.Ping(ctx, n.Addr())
	}, time.Hour, time.Second)
	manager := NewConnManager(dir, table, health, node, time.Second)

	tracker := cluster.NewConnTracker()
	pools := chanpool.NewGroup()
	t.Cleanup(pools.Close)

	return NewSessionService(cfg, manager, node, pools, tracker, &fakeIDGenerator{}), dir
}

func TestExecutePooledRetriesOnAnotherNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mocks.NewMockProxyNode(ctrl)

	node.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
			return &proxyv1.ConnectResponse{SessionKey: "pooled-" + addr}, nil
		}).
		AnyTimes()

	var executions atomic.Int32
	node.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, addr string, sessionKey string, payload []byte) (*proxyv1.ExecuteResponse, error) {
			if executions.Add(1) == 1 {
				return nil, status.Error(codes.Unavailable, "connection refused")
			}
			return &proxyv1.ExecuteResponse{Success: true, Payload: payload}, nil
		}).
		Times(2)
	node.EXPECT().Disconnect(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	node.EXPECT().Ping(gomock.Any(), gomock.Any()).Return(status.Error(codes.Unavailable, "still down")).AnyTimes()

	svc, dir := newServiceFixture(t, node)

	result, err := svc.Execute(context.Background(), "", []byte("select 1"))
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if string(result) != "select 1" {
		t.Fatalf("unexpected payload: %q", result)
	}

	// The failing node left rotation; its replacement connection landed on
	// the survivor.
	if dir.HealthyCount() != 1 {
		t.Fatalf("healthy count = %d, expected 1", dir.HealthyCount())
	}
}

func TestExecuteStickyNeverFailsOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mocks.NewMockProxyNode(ctrl)

	// Exactly one call: a sticky failure surfaces instead of retrying
	// elsewhere.
	node.EXPECT().
		Execute(gomock.Any(), "10.0.0.1:9091", "session-1", gomock.Any()).
		Return(nil, status.Error(codes.Unavailable, "connection refused")).
		Times(1)
	node.EXPECT().Ping(gomock.Any(), gomock.Any()).Return(status.Error(codes.Unavailable, "still down")).AnyTimes()

	svc, dir := newServiceFixture(t, node)
	svc.manager.table.Bind("session-1", dir.Nodes()[0])

	if _, err := svc.Execute(context.Background(), "session-1", []byte("update t set x=1")); err == nil {
		t.Fatalf("expected sticky execution failure to surface")
	}
	if dir.Nodes()[0].Healthy() {
		t.Fatalf("bound node still in rotation after connectivity failure")
	}
}

func TestExecuteStickyApplicationErrorKeepsNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mocks.NewMockProxyNode(ctrl)

	node.EXPECT().
		Execute(gomock.Any(), "10.0.0.1:9091", "session-1", gomock.Any()).
		Return(&proxyv1.ExecuteResponse{Success: false, Message: "syntax error"}, nil).
		Times(1)

	svc, dir := newServiceFixture(t, node)
	svc.manager.table.Bind("session-1", dir.Nodes()[0])

	if _, err := svc.Execute(context.Background(), "session-1", []byte("selec 1")); err == nil {
		t.Fatalf("expected remote execution failure to surface")
	}
	if !dir.Nodes()[0].Healthy() {
		t.Fatalf("application error took the node out of rotation")
	}
}

func TestEstablishFillsDatasourceDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mocks.NewMockProxyNode(ctrl)

	var mu sync.Mutex
	var seen port.ConnectDetails
	var connects atomic.Int32
	node.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
			mu.Lock()
			seen = details
			mu.Unlock()
			connects.Add(1)
			return &proxyv1.ConnectResponse{SessionKey: "session-1"}, nil
		}).
		AnyTimes()

	svc, _ := newServiceFixture(t, node)

	session, err := svc.Establish(context.Background(), port.ConnectDetails{ClientID: "client-1"})
	if err != nil {
		t.Fatalf("establish failed: %v", err)
	}
	if session.Key != "session-1" {
		t.Fatalf("unexpected session key %q", session.Key)
	}

	// Both nodes were contacted; wait for the straggler before the
	// controller checks expectations.
	for deadline := time.Now().Add(time.Second); connects.Load() < 2; {
		if time.Now().After(deadline) {
			t.Fatalf("expected both nodes to be contacted, got %d", connects.Load())
		}
		time.Sleep(time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if seen.Datasource != svc.cfg.Datasource.DSN || seen.User != svc.cfg.Datasource.User {
		t.Fatalf("datasource defaults not applied: %+v", seen)
	}
}
