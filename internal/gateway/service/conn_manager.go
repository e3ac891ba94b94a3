package service

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/anthanhphan/go-database-proxy/internal/gateway/port"
	"github.com/anthanhphan/go-database-proxy/pkg/cluster"
	proxyv1 "github.com/anthanhphan/go-database-proxy/proto/gen/proxy/v1"
	"github.com/anthanhphan/gosdk/logger"
)

const defaultEstablishTimeout = 10 * time.Second

// ConnManager is the routing facade every remote call goes through: it
// establishes sessions, resolves the node for each call, reacts to call
// outcomes, and drives opportunistic recovery.
type ConnManager struct {
	dir    *cluster.Directory
	table  *cluster.RoutingTable
	health *cluster.HealthTracker
	node   port.ProxyNode

	establishTimeout time.Duration
}

// NewConnManager wires the routing facade. A zero establishTimeout falls
// back to the default.
func NewConnManager(dir *cluster.Directory, table *cluster.RoutingTable, health *cluster.HealthTracker, node port.ProxyNode, establishTimeout time.Duration) *ConnManager {
	if establishTimeout <= 0 {
		establishTimeout = defaultEstablishTimeout
	}
	return &ConnManager{
		dir:              dir,
		table:            table,
		health:           health,
		node:             node,
		establishTimeout: establishTimeout,
	}
}

type connectOutcome struct {
	node *cluster.Node
	resp *proxyv1.ConnectResponse
	err  error
}

// EstablishSession contacts every healthy node so each of them acquires the
// per-datasource resources, then binds the session to the node named by the
// first successful reply. A reply carrying the node's self-reported identity
// binds authoritatively; otherwise the answering endpoint is used.
func (m *ConnManager) EstablishSession(ctx context.Context, details port.ConnectDetails) (*port.Session, error) {
	healthy, err := m.healthyOrRecover(ctx)
	if err != nil {
		return nil, err
	}

	results := make(chan connectOutcome, len(healthy))
	for _, n := range healthy {
		go func(n *cluster.Node) {
			// Detached from the caller so that a straggler still finishes
			// acquiring its datasource resources after the first node won.
			callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.establishTimeout)
			defer cancel()

			resp, err := m.node.Connect(callCtx, n.Addr(), details)
			if err != nil {
				m.health.ReportFailure(n, err)
			}
			results <- connectOutcome{node: n, resp: resp, err: err}
		}(n)
	}

	var lastErr error
	for range healthy {
		select {
		case out := <-results:
			if out.err != nil {
				lastErr = out.err
				continue
			}
			bound := m.resolveBoundNode(out.node, out.resp)
			m.table.Bind(out.resp.SessionKey, bound)
			logger.Infow("Session established",
				"session_key", out.resp.SessionKey, "node", bound.Addr())
			return &port.Session{
				Key:           out.resp.SessionKey,
				Node:          bound.Addr(),
				DatasourceKey: out.resp.DatasourceKey,
			}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("failed to establish session on any node: %w", lastErr)
}

// resolveBoundNode prefers the self-reported identity in the reply; a reply
// without one, or naming a node outside the directory, falls back to the
// endpoint that answered.
func (m *ConnManager) resolveBoundNode(answered *cluster.Node, resp *proxyv1.ConnectResponse) *cluster.Node {
	if resp.SelfHost == "" {
		return answered
	}
	addr := net.JoinHostPort(resp.SelfHost, strconv.Itoa(int(resp.SelfPort)))
	if n, ok := m.dir.Lookup(addr); ok {
		return n
	}
	logger.Warnw("Node reported unknown self identity, binding to answering endpoint",
		"reported", addr, "answered", answered.Addr())
	return answered
}

// Route is the single routing entry point used before every remote call. An
// empty session key selects round-robin among healthy nodes; a non-empty key
// enforces the stickiness contract and never falls over to another node.
func (m *ConnManager) Route(ctx context.Context, sessionKey string) (*cluster.Node, error) {
	if sessionKey != "" {
		return m.table.RouteSticky(sessionKey)
	}

	m.health.KickRecovery()
	if n, ok := m.table.NextRoundRobin(); ok {
		return n, nil
	}
	// Nothing in rotation: probe every due node right now and retry once.
	if m.health.RecoverDue(ctx) > 0 {
		if n, ok := m.table.NextRoundRobin(); ok {
			return n, nil
		}
	}
	return nil, cluster.ErrNoHealthyNodes
}

// ReportFailure feeds a call outcome back into health tracking. Only
// connectivity-class failures change any state.
func (m *ConnManager) ReportFailure(node *cluster.Node, err error) {
	m.health.ReportFailure(node, err)
}

// TerminateSession releases the remote session best-effort and always
// removes the binding. Tracked connections are unaffected.
func (m *ConnManager) TerminateSession(ctx context.Context, sessionKey string) error {
	node, ok := m.table.Bound(sessionKey)
	if !ok {
		return port.ErrSessionNotFound
	}
	m.table.Evict(sessionKey)

	if node.Healthy() {
		if err := m.node.Disconnect(ctx, node.Addr(), sessionKey); err != nil {
			m.health.ReportFailure(node, err)
			logger.Debugw("Remote disconnect failed, binding already removed",
				"session_key", sessionKey, "node", node.Addr(), "error", err.Error())
		}
	}
	return nil
}

// HealthSnapshot renders the cluster view for diagnostics.
func (m *ConnManager) HealthSnapshot() string {
	return m.dir.Snapshot()
}

// healthyOrRecover returns the healthy node set, running a synchronous
// recovery sweep when the set is empty.
func (m *ConnManager) healthyOrRecover(ctx context.Context) ([]*cluster.Node, error) {
	m.health.KickRecovery()
	healthy := m.dir.HealthyNodes()
	if len(healthy) > 0 {
		return healthy, nil
	}
	if m.health.RecoverDue(ctx) > 0 {
		if healthy = m.dir.HealthyNodes(); len(healthy) > 0 {
			return healthy, nil
		}
	}
	return nil, cluster.ErrNoHealthyNodes
}
