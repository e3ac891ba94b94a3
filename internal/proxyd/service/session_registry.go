package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/anthanhphan/go-database-proxy/internal/proxyd/port"
	"github.com/anthanhphan/go-database-proxy/pkg/poolsize"
	"github.com/anthanhphan/gosdk/logger"
	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"
)

// SessionRegistryImpl keeps this node's sessions in memory. Creating a
// session for a datasource the node has not seen yet also registers the
// datasource's pool allocation, so the node's share of the pool budget is
// claimed the moment the first session arrives.
type SessionRegistryImpl struct {
	mu       sync.RWMutex
	sessions map[string]*port.ProxySession

	coordinator *poolsize.Coordinator
	maxSize     int
	minIdle     int
	totalNodes  int
}

var _ port.SessionRegistry = (*SessionRegistryImpl)(nil)

// NewSessionRegistry creates a registry backed by the pool coordinator.
func NewSessionRegistry(coordinator *poolsize.Coordinator, maxSize, minIdle, totalNodes int) *SessionRegistryImpl {
	return &SessionRegistryImpl{
		sessions:    make(map[string]*port.ProxySession),
		coordinator: coordinator,
		maxSize:     maxSize,
		minIdle:     minIdle,
		totalNodes:  totalNodes,
	}
}

// Create establishes a session and returns it. The datasource key is stable
// across nodes for the same datasource string.
func (r *SessionRegistryImpl) Create(user, database, datasource, clientID string) (*port.ProxySession, error) {
	if datasource == "" {
		return nil, port.ErrMissingDatasource
	}

	alloc := r.coordinator.Register(datasource, r.maxSize, r.minIdle, r.totalNodes)

	session := &port.ProxySession{
		Key:           uuid.NewString(),
		User:          user,
		Database:      database,
		Datasource:    datasource,
		DatasourceKey: fmt.Sprintf("%016x", alloc.ConnHash),
		ClientID:      clientID,
		CreatedAt:     time.Now(),
	}

	r.mu.Lock()
	r.sessions[session.Key] = session
	r.mu.Unlock()

	logger.Debugw("Session created",
		"session_key", session.Key,
		"datasource_key", session.DatasourceKey,
		"pool_max", alloc.MaxSize())
	return session, nil
}

func (r *SessionRegistryImpl) Get(key string) (*port.ProxySession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[key]
	return s, ok
}

// Remove deletes the session and reports whether it existed.
func (r *SessionRegistryImpl) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[key]; !ok {
		return false
	}
	delete(r.sessions, key)
	return true
}

func (r *SessionRegistryImpl) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// DatasourceKey computes the stable key for a datasource string without
// registering it.
func DatasourceKey(datasource string) string {
	return fmt.Sprintf("%016x", murmur3.Sum64([]byte(datasource)))
}
