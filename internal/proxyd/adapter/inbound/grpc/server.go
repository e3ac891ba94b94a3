package grpc_handler

import (
	"context"
	"errors"

	"github.com/anthanhphan/go-database-proxy/internal/proxyd/port"
	proxyv1 "github.com/anthanhphan/go-database-proxy/proto/gen/proxy/v1"
	"github.com/anthanhphan/gosdk/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements the gRPC ProxyService.
type Server struct {
	proxyv1.UnimplementedProxyServiceServer
	registry port.SessionRegistry
	executor port.StatementExecutor
	selfHost string
	selfPort int32
}

// NewServer creates a new gRPC server advertising the given identity.
func NewServer(registry port.SessionRegistry, executor port.StatementExecutor, selfHost string, selfPort int) *Server {
	return &Server{
		registry: registry,
		executor: executor,
		selfHost: selfHost,
		// #nosec G115 -- port numbers fit in int32
		selfPort: int32(selfPort),
	}
}

// Connect establishes a session. The reply carries this node's advertised
// identity so the caller binds the session to the right directory entry even
// when it reached us through a different address.
func (s *Server) Connect(ctx context.Context, req *proxyv1.ConnectRequest) (*proxyv1.ConnectResponse, error) {
	session, err := s.registry.Create(req.User, req.Database, req.Datasource, req.ClientId)
	if err != nil {
		if errors.Is(err, port.ErrMissingDatasource) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to create session: %v", err)
	}

	return &proxyv1.ConnectResponse{
		SessionKey:    session.Key,
		SelfHost:      s.selfHost,
		SelfPort:      s.selfPort,
		DatasourceKey: session.DatasourceKey,
	}, nil
}

// Execute runs a statement. A session key that does not live on this node is
// an application-level failure: the caller gets a clean refusal, not a
// transport error, so routing never takes this node out of rotation for it.
func (s *Server) Execute(ctx context.Context, req *proxyv1.ExecuteRequest) (*proxyv1.ExecuteResponse, error) {
	var session *port.ProxySession
	if req.SessionKey != "" {
		var ok bool
		session, ok = s.registry.Get(req.SessionKey)
		if !ok {
			logger.Warnw("Execute for unknown session", "session_key", req.SessionKey)
			return &proxyv1.ExecuteResponse{
				Success: false,
				Message: port.ErrUnknownSession.Error(),
			}, nil
		}
	}

	result, err := s.executor.Execute(ctx, session, req.Payload)
	if err != nil {
		return &proxyv1.ExecuteResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	return &proxyv1.ExecuteResponse{
		Success: true,
		Payload: result,
	}, nil
}

// Disconnect releases a session. Releasing a session that is already gone
// succeeds; the caller's intent is satisfied either way.
func (s *Server) Disconnect(ctx context.Context, req *proxyv1.DisconnectRequest) (*proxyv1.DisconnectResponse, error) {
	removed := s.registry.Remove(req.SessionKey)
	if !removed {
		logger.Debugw("Disconnect for unknown session", "session_key", req.SessionKey)
	}
	return &proxyv1.DisconnectResponse{Success: true}, nil
}

// Ping reports liveness and the advertised identity.
func (s *Server) Ping(ctx context.Context, req *proxyv1.PingRequest) (*proxyv1.PingResponse, error) {
	return &proxyv1.PingResponse{
		Host: s.selfHost,
		Port: s.selfPort,
	}, nil
}
