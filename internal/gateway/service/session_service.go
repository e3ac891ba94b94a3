package service

import (
	"context"
	"fmt"
	"time"

	"github.com/anthanhphan/go-database-proxy/internal/gateway/config"
	"github.com/anthanhphan/go-database-proxy/internal/gateway/port"
	"github.com/anthanhphan/go-database-proxy/pkg/chanpool"
	"github.com/anthanhphan/go-database-proxy/pkg/cluster"
	"github.com/anthanhphan/gosdk/logger"
)

// IDGenerator produces unique connection IDs for tracked connections.
type IDGenerator interface {
	Next() (int64, error)
}

// SessionService implements the gateway's business surface on top of the
// routing facade. Sticky work goes straight through Route; unbound work runs
// over pooled logical connections so the redistributor has connections to
// act on.
type SessionService struct {
	cfg     *config.Config
	manager *ConnManager
	node    port.ProxyNode
	pools   *chanpool.Group
	tracker *cluster.ConnTracker
	ids     IDGenerator
}

var _ port.SessionService = (*SessionService)(nil)

// NewSessionService wires the service.
func NewSessionService(cfg *config.Config, manager *ConnManager, node port.ProxyNode, pools *chanpool.Group, tracker *cluster.ConnTracker, ids IDGenerator) *SessionService {
	return &SessionService{
		cfg:     cfg,
		manager: manager,
		node:    node,
		pools:   pools,
		tracker: tracker,
		ids:     ids,
	}
}

// Establish creates a sticky session.
func (s *SessionService) Establish(ctx context.Context, details port.ConnectDetails) (*port.Session, error) {
	if details.Datasource == "" {
		details.Datasource = s.cfg.Datasource.DSN
	}
	if details.User == "" {
		details.User = s.cfg.Datasource.User
	}
	if details.Database == "" {
		details.Database = s.cfg.Datasource.Database
	}
	return s.manager.EstablishSession(ctx, details)
}

// Execute runs a statement payload. Sticky keys are routed under the
// stickiness contract and never failed over; unbound work is retried against
// a different node on connectivity-class failures.
func (s *SessionService) Execute(ctx context.Context, sessionKey string, payload []byte) ([]byte, error) {
	if sessionKey != "" {
		return s.executeSticky(ctx, sessionKey, payload)
	}
	return s.executePooled(ctx, payload)
}

func (s *SessionService) executeSticky(ctx context.Context, sessionKey string, payload []byte) ([]byte, error) {
	node, err := s.manager.Route(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	resp, err := s.node.Execute(ctx, node.Addr(), sessionKey, payload)
	if err != nil {
		// Surface directly: rerouting sticky work could split a transaction.
		s.manager.ReportFailure(node, err)
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("remote execution failed: %s", resp.Message)
	}
	return resp.Payload, nil
}

func (s *SessionService) executePooled(ctx context.Context, payload []byte) ([]byte, error) {
	pool := s.datasourcePool()

	attempts := s.cfg.App.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		pc, err := pool.Acquire(ctx)
		if err != nil {
			if lastErr != nil {
				return nil, fmt.Errorf("%w (last node error: %v)", err, lastErr)
			}
			return nil, err
		}
		lc := pc.Resource().(*logicalConn)

		resp, err := s.node.Execute(ctx, lc.node.Addr(), lc.sessionKey, payload)
		if err != nil {
			s.manager.ReportFailure(lc.node, err)
			if cluster.IsConnectivityError(err) {
				// Discard this connection and retry; the replacement lands on
				// a healthy node through the regular routing path.
				pc.Invalidate()
				pool.Release(pc)
				lastErr = err
				continue
			}
			pool.Release(pc)
			return nil, err
		}

		s.tracker.Touch(lc.id)
		pool.Release(pc)

		if !resp.Success {
			return nil, fmt.Errorf("remote execution failed: %s", resp.Message)
		}
		return resp.Payload, nil
	}
	return nil, fmt.Errorf("statement failed on %d nodes: %w", attempts, lastErr)
}

// Terminate removes the session binding and releases the remote session.
func (s *SessionService) Terminate(ctx context.Context, sessionKey string) error {
	return s.manager.TerminateSession(ctx, sessionKey)
}

// ClusterHealth renders the per-node health view.
func (s *SessionService) ClusterHealth() string {
	return s.manager.HealthSnapshot()
}

func (s *SessionService) datasourcePool() *chanpool.Pool {
	return s.pools.GetOrCreate(s.cfg.Datasource.DSN, s.dialPooled, s.cfg.Pool.MaxSize)
}

// dialPooled establishes one pooled logical connection through the regular
// routing entry point, registering it with the tracker.
func (s *SessionService) dialPooled(ctx context.Context) (chanpool.Resource, error) {
	node, err := s.manager.Route(ctx, "")
	if err != nil {
		return nil, err
	}

	resp, err := s.node.Connect(ctx, node.Addr(), port.ConnectDetails{
		User:       s.cfg.Datasource.User,
		Database:   s.cfg.Datasource.Database,
		Datasource: s.cfg.Datasource.DSN,
	})
	if err != nil {
		s.manager.ReportFailure(node, err)
		return nil, err
	}

	id, err := s.ids.Next()
	if err != nil {
		return nil, err
	}
	s.tracker.Track(id, node)
	logger.Debugw("Pooled connection established", "conn_id", id, "node", node.Addr())

	return &logicalConn{
		id:         id,
		node:       node,
		sessionKey: resp.SessionKey,
		svc:        s,
	}, nil
}

// logicalConn is one pooled logical connection. It satisfies
// chanpool.Resource; Close releases the remote session and unregisters the
// tracked connection.
type logicalConn struct {
	id         int64
	node       *cluster.Node
	sessionKey string
	svc        *SessionService
}

func (c *logicalConn) ID() int64 {
	return c.id
}

func (c *logicalConn) Close() error {
	c.svc.tracker.Forget(c.id)

	if !c.node.Healthy() {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.svc.node.Disconnect(ctx, c.node.Addr(), c.sessionKey)
}
