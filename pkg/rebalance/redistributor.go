package rebalance

import (
	"math"
	"sort"

	"github.com/anthanhphan/go-database-proxy/pkg/cluster"
	"github.com/anthanhphan/gosdk/logger"
)

const (
	// DefaultIdleFraction is the share of a node's excess connections moved
	// per recovery event. Moving only a fraction avoids a reconnect stampede
	// when a node flaps back in.
	DefaultIdleFraction = 0.5

	// DefaultMaxPerEvent caps total invalidations per recovery event across
	// all overloaded nodes.
	DefaultMaxPerEvent = 10
)

// Invalidator marks a logical connection invalid so its owning pool discards
// and recreates it on the next validity check. Connections are never closed
// in-flight.
type Invalidator interface {
	Invalidate(connID int64)
}

// Strategy rebalances tracked connections after nodes rejoin rotation and
// returns the number of connections it invalidated.
type Strategy interface {
	Rebalance(recovered []*cluster.Node, healthyCount int) int
}

// MarkInvalid is the lazy-replacement strategy: victims are flagged invalid
// and replaced naturally by their pool through the regular routing path, so
// in-flight work is never interrupted.
type MarkInvalid struct {
	tracker      *cluster.ConnTracker
	inv          Invalidator
	idleFraction float64
	maxPerEvent  int
}

// NewMarkInvalid builds the strategy. Out-of-range parameters fall back to
// defaults.
func NewMarkInvalid(tracker *cluster.ConnTracker, inv Invalidator, idleFraction float64, maxPerEvent int) *MarkInvalid {
	if idleFraction <= 0 || idleFraction > 1 {
		idleFraction = DefaultIdleFraction
	}
	if maxPerEvent <= 0 {
		maxPerEvent = DefaultMaxPerEvent
	}
	return &MarkInvalid{
		tracker:      tracker,
		inv:          inv,
		idleFraction: idleFraction,
		maxPerEvent:  maxPerEvent,
	}
}

var _ Strategy = (*MarkInvalid)(nil)

// Rebalance selects a bounded, least-recently-used subset of connections on
// overloaded nodes and marks them invalid. It only acts when at least one
// node besides the recovered ones is healthy; with no survivors the recovered
// nodes already receive all new work.
func (m *MarkInvalid) Rebalance(recovered []*cluster.Node, healthyCount int) int {
	if healthyCount <= len(recovered) || healthyCount == 0 {
		return 0
	}

	total := m.tracker.Total()
	if total == 0 {
		return 0
	}
	targetPerNode := total / healthyCount

	grouped := m.tracker.ByNode()
	addrs := make([]string, 0, len(grouped))
	for addr := range grouped {
		addrs = append(addrs, addr)
	}
	// Most overloaded nodes first so the global cap is spent where it helps.
	sort.Slice(addrs, func(i, j int) bool {
		if len(grouped[addrs[i]]) != len(grouped[addrs[j]]) {
			return len(grouped[addrs[i]]) > len(grouped[addrs[j]])
		}
		return addrs[i] < addrs[j]
	})

	moved := 0
	for _, addr := range addrs {
		conns := grouped[addr]
		excess := len(conns) - targetPerNode
		if excess <= 0 {
			continue
		}
		toMove := int(math.Ceil(float64(excess) * m.idleFraction))
		if remaining := m.maxPerEvent - moved; toMove > remaining {
			toMove = remaining
		}
		if toMove <= 0 {
			break
		}

		// Oldest first: idle connections are the cheapest to sacrifice.
		sort.Slice(conns, func(i, j int) bool {
			return conns[i].LastUsed().Before(conns[j].LastUsed())
		})
		for _, conn := range conns[:toMove] {
			m.inv.Invalidate(conn.ID)
		}
		moved += toMove

		if moved >= m.maxPerEvent {
			// The next recovery event continues the rebalance.
			break
		}
	}

	if moved > 0 {
		logger.Infow("Rebalanced connections after node recovery",
			"invalidated", moved, "healthy_nodes", healthyCount, "target_per_node", targetPerNode)
	}
	return moved
}
