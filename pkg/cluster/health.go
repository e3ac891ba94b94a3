package cluster

import (
	"context"
	"time"

	"github.com/anthanhphan/gosdk/logger"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultRetryDelay is how long a node stays out of rotation before the
	// next relevant call is allowed to probe it again.
	DefaultRetryDelay = 5 * time.Second

	// DefaultProbeTimeout bounds a single recovery probe so it can never
	// stall a caller's routing decision.
	DefaultProbeTimeout = 2 * time.Second
)

// ProbeFunc re-establishes the underlying transport to a node. A nil error
// means the node is reachable again.
type ProbeFunc func(ctx context.Context, node *Node) error

// RecoveryHook is invoked after a recovery sweep that brought nodes back,
// with the recovered nodes and the healthy count after the sweep. It runs
// outside any lock.
type RecoveryHook func(recovered []*Node, healthyCount int)

// HealthTracker owns the per-node health state machine: connectivity-class
// failures flip a node out of rotation, a successful probe flips it back.
// Probes for the same node are deduplicated, so a flapping node is never
// hammered by concurrent callers.
type HealthTracker struct {
	dir          *Directory
	probe        ProbeFunc
	retryDelay   time.Duration
	probeTimeout time.Duration
	probes       singleflight.Group
	onRecovered  RecoveryHook
}

// NewHealthTracker creates a tracker over the directory. The probe is
// mandatory; zero durations fall back to defaults.
func NewHealthTracker(dir *Directory, probe ProbeFunc, retryDelay, probeTimeout time.Duration) *HealthTracker {
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	return &HealthTracker{
		dir:          dir,
		probe:        probe,
		retryDelay:   retryDelay,
		probeTimeout: probeTimeout,
	}
}

// OnRecovered registers the hook fired after nodes rejoin rotation. Set once
// during wiring, before concurrent use.
func (t *HealthTracker) OnRecovered(hook RecoveryHook) {
	t.onRecovered = hook
}

// ReportFailure classifies a call outcome. Connectivity-class failures take
// the node out of rotation; application-level errors are ignored here and
// surface to the caller untouched.
func (t *HealthTracker) ReportFailure(node *Node, err error) {
	if !IsConnectivityError(err) {
		return
	}
	if node.markUnhealthy(time.Now()) {
		logger.Warnw("Proxy node left rotation", "node", node.Addr(), "error", err.Error())
	}
}

// MarkRecovered puts a node back in rotation outside of a probe, typically
// when a live call to it succeeded while it was still flagged down.
func (t *HealthTracker) MarkRecovered(node *Node) {
	if node.markHealthy() {
		logger.Infow("Proxy node rejoined rotation", "node", node.Addr())
		t.fireRecovered([]*Node{node})
	}
}

// RecoverDue synchronously probes every unhealthy node whose last failure is
// older than the retry delay and returns how many rejoined rotation.
func (t *HealthTracker) RecoverDue(ctx context.Context) int {
	var recovered []*Node
	for _, node := range t.dir.Nodes() {
		if node.Healthy() || !t.due(node) {
			continue
		}
		if t.probeNode(ctx, node) {
			recovered = append(recovered, node)
		}
	}
	if len(recovered) > 0 {
		t.fireRecovered(recovered)
	}
	return len(recovered)
}

// KickRecovery triggers an asynchronous recovery sweep when any unhealthy
// node is due for a probe. Cheap to call on every routing decision.
func (t *HealthTracker) KickRecovery() {
	for _, node := range t.dir.Nodes() {
		if !node.Healthy() && t.due(node) {
			go func() {
				_ = t.RecoverDue(context.Background())
			}()
			return
		}
	}
}

func (t *HealthTracker) due(node *Node) bool {
	last := node.LastFailure()
	return last.IsZero() || time.Since(last) >= t.retryDelay
}

// probeNode runs a deduplicated, timeout-bounded probe. Probe failures only
// extend the unhealthy period; they are never surfaced to callers.
func (t *HealthTracker) probeNode(ctx context.Context, node *Node) bool {
	v, _, _ := t.probes.Do(node.Addr(), func() (any, error) {
		probeCtx, cancel := context.WithTimeout(ctx, t.probeTimeout)
		defer cancel()

		if err := t.probe(probeCtx, node); err != nil {
			node.lastFailure.Store(time.Now().UnixMilli())
			logger.Debugw("Recovery probe failed", "node", node.Addr(), "error", err.Error())
			return false, nil
		}
		return node.markHealthy(), nil
	})
	ok, _ := v.(bool)
	if ok {
		logger.Infow("Proxy node rejoined rotation", "node", node.Addr())
	}
	return ok
}

func (t *HealthTracker) fireRecovered(recovered []*Node) {
	if t.onRecovered == nil {
		return
	}
	t.onRecovered(recovered, t.dir.HealthyCount())
}
