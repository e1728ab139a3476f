package dag

import "sync"

// Graph is a collection of nodes and their dependencies, representing the
// pass-level topology of a render graph. All operations on the graph are
// concurrency-safe.
type Graph struct {
	mutex sync.RWMutex
	nodes map[string]*node
	// nextSeq numbers nodes in insertion order; it breaks ties in sorts.
	nextSeq int
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs).
type node struct {
	id  string
	seq int
	// deps maps predecessor IDs to the number of edges from them. Several
	// port edges between the same two passes collapse into one dependency.
	deps map[string]int
	// dependents maps successor IDs to the number of edges to them.
	dependents map[string]int
}
