package port

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the caller-visible handle of an established sticky session.
type Session struct {
	Key           string `json:"key"`
	Node          string `json:"node"`
	DatasourceKey string `json:"datasource_key"`
}

// SessionService is the gateway's business surface: establish sticky
// sessions, execute bound or unbound work, terminate sessions, and expose
// the cluster health snapshot.
type SessionService interface {
	// Establish creates a session, contacting every healthy node and binding
	// the session to the node that owns it.
	Establish(ctx context.Context, details ConnectDetails) (*Session, error)

	// Execute runs a statement payload. An empty session key routes the work
	// round-robin over pooled connections; a non-empty key enforces
	// stickiness.
	Execute(ctx context.Context, sessionKey string, payload []byte) ([]byte, error)

	// Terminate removes a session binding and releases the remote session.
	Terminate(ctx context.Context, sessionKey string) error

	// ClusterHealth renders the per-node view as
	// "host:port(UP);host:port(DOWN);...".
	ClusterHealth() string
}
