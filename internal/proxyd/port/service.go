package port

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnknownSession is returned when a session key does not exist on this
	// node, typically because the caller bound it elsewhere.
	ErrUnknownSession = errors.New("unknown session key")

	// ErrMissingDatasource is returned when a Connect carries no datasource.
	ErrMissingDatasource = errors.New("datasource is required")
)

// ProxySession is one established session on this node.
type ProxySession struct {
	Key           string
	User          string
	Database      string
	Datasource    string
	DatasourceKey string
	ClientID      string
	CreatedAt     time.Time
}

// SessionRegistry owns the sessions living on this node.
type SessionRegistry interface {
	Create(user, database, datasource, clientID string) (*ProxySession, error)
	Get(key string) (*ProxySession, bool)
	Remove(key string) bool
	Count() int
}

// StatementExecutor runs a statement payload against the session's
// datasource. The payload is opaque to routing.
type StatementExecutor interface {
	Execute(ctx context.Context, session *ProxySession, payload []byte) ([]byte, error)
}
