package cluster

import "strings"

// Directory is the ordered, fixed set of nodes configured for one cluster.
// Nodes are never added or removed after construction; only their health
// flags change. The slice returned by Nodes must be treated as read-only.
type Directory struct {
	nodes  []*Node
	byAddr map[string]*Node
}

// NewDirectory builds a directory from the resolver's node list, preserving
// order. Duplicate (host, port) pairs collapse to the first occurrence.
func NewDirectory(nodes []*Node) *Directory {
	d := &Directory{
		nodes:  make([]*Node, 0, len(nodes)),
		byAddr: make(map[string]*Node, len(nodes)),
	}
	for _, n := range nodes {
		if _, ok := d.byAddr[n.Addr()]; ok {
			continue
		}
		d.nodes = append(d.nodes, n)
		d.byAddr[n.Addr()] = n
	}
	return d
}

// Nodes returns all configured nodes in resolver order.
func (d *Directory) Nodes() []*Node {
	return d.nodes
}

// Size returns the number of configured nodes.
func (d *Directory) Size() int {
	return len(d.nodes)
}

// Lookup finds a node by its "host:port" identity.
func (d *Directory) Lookup(addr string) (*Node, bool) {
	n, ok := d.byAddr[addr]
	return n, ok
}

// HealthyNodes returns the nodes currently in rotation, in directory order.
func (d *Directory) HealthyNodes() []*Node {
	healthy := make([]*Node, 0, len(d.nodes))
	for _, n := range d.nodes {
		if n.Healthy() {
			healthy = append(healthy, n)
		}
	}
	return healthy
}

// HealthyCount returns the number of nodes currently in rotation.
func (d *Directory) HealthyCount() int {
	count := 0
	for _, n := range d.nodes {
		if n.Healthy() {
			count++
		}
	}
	return count
}

// Snapshot renders the per-node health view as
// "host:port(UP);host:port(DOWN);..." for diagnostics.
func (d *Directory) Snapshot() string {
	parts := make([]string, 0, len(d.nodes))
	for _, n := range d.nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ";")
}
