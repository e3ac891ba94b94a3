package service

import (
	"context"

	"github.com/anthanhphan/go-database-proxy/internal/proxyd/port"
)

// EchoExecutor acknowledges statements by returning the payload unchanged.
// It stands in for a driver-backed executor; routing, health and pooling
// behave identically either way because the payload is opaque to them.
type EchoExecutor struct{}

var _ port.StatementExecutor = (*EchoExecutor)(nil)

func NewEchoExecutor() *EchoExecutor {
	return &EchoExecutor{}
}

func (e *EchoExecutor) Execute(ctx context.Context, session *port.ProxySession, payload []byte) ([]byte, error) {
	return payload, nil
}
