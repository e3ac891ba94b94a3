package peer

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	proxyv1 "github.com/anthanhphan/go-database-proxy/proto/gen/proxy/v1"
)

// Pinger probes peer proxy nodes. It exists only to feed the local health
// view that sizes this node's pool share; it never carries session traffic.
// A failed probe drops the cached channel so the next probe redials.
type Pinger struct {
	clients map[string]proxyv1.ProxyServiceClient
	conns   map[string]*grpc.ClientConn
	mu      sync.RWMutex

	clientFactory ClientFactory
}

// ClientFactory overrides channel creation, for tests.
type ClientFactory func(addr string) (proxyv1.ProxyServiceClient, error)

func NewPinger() *Pinger {
	return &Pinger{
		clients: make(map[string]proxyv1.ProxyServiceClient),
		conns:   make(map[string]*grpc.ClientConn),
	}
}

// Ping checks a peer. A nil error means the peer answered on a live channel.
func (p *Pinger) Ping(ctx context.Context, addr string) error {
	client, err := p.getClient(addr)
	if err != nil {
		return err
	}
	if _, err := client.Ping(ctx, &proxyv1.PingRequest{}); err != nil {
		p.dropClient(addr)
		return err
	}
	return nil
}

func (p *Pinger) getClient(addr string) (proxyv1.ProxyServiceClient, error) {
	p.mu.RLock()
	client, ok := p.clients[addr]
	p.mu.RUnlock()
	if ok {
		return client, nil
	}

	var (
		newClient proxyv1.ProxyServiceClient
		newConn   *grpc.ClientConn
		err       error
	)
	if p.clientFactory != nil {
		newClient, err = p.clientFactory(addr)
	} else {
		newConn, err = grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err == nil {
			newClient = proxyv1.NewProxyServiceClient(newConn)
		}
	}
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[addr]; ok {
		if newConn != nil {
			_ = newConn.Close()
		}
		return client, nil
	}

	p.clients[addr] = newClient
	if newConn != nil {
		p.conns[addr] = newConn
	}
	return newClient, nil
}

func (p *Pinger) dropClient(addr string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if conn, ok := p.conns[addr]; ok {
		_ = conn.Close()
		delete(p.conns, addr)
	}
	delete(p.clients, addr)
}

// SetClientFactory sets the channel factory for testing purposes.
func (p *Pinger) SetClientFactory(f ClientFactory) {
	p.clientFactory = f
}

func (p *Pinger) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, conn := range p.conns {
		_ = conn.Close()
	}
	p.conns = make(map[string]*grpc.ClientConn)
	p.clients = make(map[string]proxyv1.ProxyServiceClient)
}
