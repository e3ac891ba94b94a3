package proxy_node

import (
	"context"
	"errors"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/anthanhphan/go-database-proxy/internal/gateway/port"
	"github.com/anthanhphan/go-database-proxy/pkg/resilience"
	proxyv1 "github.com/anthanhphan/go-database-proxy/proto/gen/proxy/v1"
	"github.com/anthanhphan/gosdk/logger"
)

// GrpcAdapter reaches proxy nodes over gRPC. Channels are cached per address
// and guarded by a per-address circuit breaker; a transport failure drops the
// cached channel so the next call redials.
type GrpcAdapter struct {
	clients  map[string]proxyv1.ProxyServiceClient
	conns    map[string]*grpc.ClientConn
	breakers map[string]*resilience.Breaker
	mu       sync.RWMutex

	clientFactory ClientFactory
}

// ClientFactory overrides channel creation, for tests.
type ClientFactory func(addr string) (proxyv1.ProxyServiceClient, error)

func NewGrpcAdapter() *GrpcAdapter {
	return &GrpcAdapter{
		clients:  make(map[string]proxyv1.ProxyServiceClient),
		conns:    make(map[string]*grpc.ClientConn),
		breakers: make(map[string]*resilience.Breaker),
	}
}

var _ port.ProxyNode = (*GrpcAdapter)(nil)

func (a *GrpcAdapter) Connect(ctx context.Context, addr string, details port.ConnectDetails) (*proxyv1.ConnectResponse, error) {
	breaker := a.getBreaker(addr)
	var response *proxyv1.ConnectResponse
	err := breaker.Do(ctx, func(execCtx context.Context) error {
		client, err := a.getClient(addr)
		if err != nil {
			return normalizeRPCErr(err)
		}
		response, err = client.Connect(execCtx, &proxyv1.ConnectRequest{
			User:       details.User,
			Database:   details.Database,
			Datasource: details.Datasource,
			ClientId:   details.ClientID,
		})
		return normalizeRPCErr(err)
	})
	if err != nil {
		a.handleRPCErr(addr, err, "Connect")
		return nil, err
	}
	return response, nil
}

func (a *GrpcAdapter) Execute(ctx context.Context, addr string, sessionKey string, payload []byte) (*proxyv1.ExecuteResponse, error) {
	breaker := a.getBreaker(addr)
	var response *proxyv1.ExecuteResponse
	err := breaker.Do(ctx, func(execCtx context.Context) error {
		client, err := a.getClient(addr)
		if err != nil {
			return normalizeRPCErr(err)
		}
		response, err = client.Execute(execCtx, &proxyv1.ExecuteRequest{
			SessionKey: sessionKey,
			Payload:    payload,
		})
		return normalizeRPCErr(err)
	})
	if err != nil {
		a.handleRPCErr(addr, err, "Execute")
		return nil, err
	}
	return response, nil
}

func (a *GrpcAdapter) Disconnect(ctx context.Context, addr string, sessionKey string) error {
	breaker := a.getBreaker(addr)
	err := breaker.Do(ctx, func(execCtx context.Context) error {
		client, err := a.getClient(addr)
		if err != nil {
			return normalizeRPCErr(err)
		}
		_, err = client.Disconnect(execCtx, &proxyv1.DisconnectRequest{
			SessionKey: sessionKey,
		})
		return normalizeRPCErr(err)
	})
	if err != nil {
		a.handleRPCErr(addr, err, "Disconnect")
	}
	return err
}

// Ping bypasses the breaker: it is the recovery probe, and a probe against a
// node whose breaker is open must still reach the wire. It always drops the
// cached channel first so success proves a fresh transport.
func (a *GrpcAdapter) Ping(ctx context.Context, addr string) error {
	a.dropClient(addr)

	client, err := a.getClient(addr)
	if err != nil {
		return err
	}
	if _, err := client.Ping(ctx, &proxyv1.PingRequest{}); err != nil {
		a.dropClient(addr)
		return err
	}
	return nil
}

func (a *GrpcAdapter) getClient(addr string) (proxyv1.ProxyServiceClient, error) {
	a.mu.RLock()
	client, ok := a.clients[addr]
	a.mu.RUnlock()
	if ok {
		return client, nil
	}

	var (
		newClient proxyv1.ProxyServiceClient
		newConn   *grpc.ClientConn
		err       error
	)
	if a.clientFactory != nil {
		newClient, err = a.clientFactory(addr)
	} else {
		newConn, err = grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err == nil {
			newClient = proxyv1.NewProxyServiceClient(newConn)
		}
	}
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if client, ok := a.clients[addr]; ok {
		if newConn != nil {
			_ = newConn.Close()
		}
		return client, nil
	}

	a.clients[addr] = newClient
	if newConn != nil {
		a.conns[addr] = newConn
	}
	return newClient, nil
}

func (a *GrpcAdapter) getBreaker(addr string) *resilience.Breaker {
	a.mu.RLock()
	b, ok := a.breakers[addr]
	a.mu.RUnlock()
	if ok {
		return b
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if b, ok = a.breakers[addr]; ok {
		return b
	}
	b = resilience.NewBreaker(resilience.Config{
		Name:             addr,
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      10 * time.Second,
	})
	a.breakers[addr] = b
	return b
}

func (a *GrpcAdapter) handleRPCErr(addr string, err error, op string) {
	if errors.Is(err, resilience.ErrBreakerOpen) {
		logger.Warnw("Proxy RPC short-circuited", "op", op, "addr", addr, "error", err.Error())
		return
	}
	if errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled {
		return
	}

	logger.Warnw("Proxy RPC failed", "op", op, "addr", addr, "error", err.Error())
	a.dropClient(addr)
}

func (a *GrpcAdapter) dropClient(addr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if conn, ok := a.conns[addr]; ok {
		_ = conn.Close()
		delete(a.conns, addr)
	}
	delete(a.clients, addr)
}

// SetClientFactory sets the channel factory for testing purposes.
func (a *GrpcAdapter) SetClientFactory(f ClientFactory) {
	a.clientFactory = f
}

func normalizeRPCErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled {
		return context.Canceled
	}
	return err
}

func (a *GrpcAdapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, conn := range a.conns {
		_ = conn.Close()
	}
	a.conns = make(map[string]*grpc.ClientConn)
	a.clients = make(map[string]proxyv1.ProxyServiceClient)
}
