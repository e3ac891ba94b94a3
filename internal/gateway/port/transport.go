package port

import (
	"context"

	proxyv1 "github.com/anthanhphan/go-database-proxy/proto/gen/proxy/v1"
)

//go:generate mockgen -destination=../service/mocks/proxy_node_mock.go -package=mocks -source=transport.go

// ConnectDetails carries the session-establishment parameters forwarded to
// every node.
type ConnectDetails struct {
	User       string
	Database   string
	Datasource string
	ClientID   string
}

// ProxyNode is the transport to one proxy endpoint, addressed by
// "host:port". Implementations own channel reuse and per-node breakers; the
// routing layer never dials.
type ProxyNode interface {
	// Connect establishes a session on the addressed node.
	Connect(ctx context.Context, addr string, details ConnectDetails) (*proxyv1.ConnectResponse, error)

	// Execute runs an opaque statement payload on the addressed node.
	Execute(ctx context.Context, addr string, sessionKey string, payload []byte) (*proxyv1.ExecuteResponse, error)

	// Disconnect terminates a session on the addressed node.
	Disconnect(ctx context.Context, addr string, sessionKey string) error

	// Ping re-establishes the transport to the addressed node; used as the
	// recovery probe.
	Ping(ctx context.Context, addr string) error

	// Close releases every cached channel.
	Close()
}
