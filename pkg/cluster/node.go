package cluster

import (
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"
)

// Node describes one proxy endpoint. Identity is the (host, port) pair and is
// fixed at construction; only the health flag and the last-failure timestamp
// ever change, both through atomics so concurrent routing never takes a lock
// to read them.
type Node struct {
	Host string
	Port int
	// Name is the optional per-node configuration name supplied by the
	// node-list resolver. Informational only.
	Name string

	down        atomic.Bool
	lastFailure atomic.Int64 // unix milliseconds of the last connectivity failure
}

// NewNode creates a healthy node descriptor.
func NewNode(host string, port int, name string) *Node {
	return &Node{Host: host, Port: port, Name: name}
}

// Addr returns the dialable "host:port" form, which doubles as the node's
// identity key.
func (n *Node) Addr() string {
	return net.JoinHostPort(n.Host, strconv.Itoa(n.Port))
}

// Healthy reports whether the node is currently in rotation.
func (n *Node) Healthy() bool {
	return !n.down.Load()
}

// LastFailure returns the time of the most recent connectivity failure, or the
// zero time if the node never failed.
func (n *Node) LastFailure() time.Time {
	ms := n.lastFailure.Load()
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func (n *Node) markUnhealthy(at time.Time) bool {
	n.lastFailure.Store(at.UnixMilli())
	return n.down.CompareAndSwap(false, true)
}

func (n *Node) markHealthy() bool {
	return n.down.CompareAndSwap(true, false)
}

func (n *Node) String() string {
	state := "UP"
	if n.down.Load() {
		state = "DOWN"
	}
	return fmt.Sprintf("%s(%s)", n.Addr(), state)
}
