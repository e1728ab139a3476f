package dag

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrCycle is returned when the graph contains a dependency cycle.
var ErrCycle = errors.New("cycle detected")

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:         id,
		seq:        g.nextSeq,
		deps:       make(map[string]int),
		dependents: make(map[string]int),
	}
	g.nextSeq++
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// RemoveNode deletes a node and every edge touching it. Removing an unknown
// node is a no-op.
func (g *Graph) RemoveNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for depID := range n.deps {
		delete(g.nodes[depID].dependents, id)
	}
	for childID := range n.dependents {
		delete(g.nodes[childID].deps, id)
	}
	delete(g.nodes, id)
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node.
// This signifies that `toID` has a dependency on `fromID`. An error is returned
// if either node does not exist or if the edge would create a self-reference.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.deps[fromID]++
	fromNode.dependents[toID]++

	return nil
}

// RemoveEdge drops one edge between the two nodes. The dependency disappears
// once every edge between them has been removed.
func (g *Graph) RemoveEdge(fromID, toID string) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}
	if toNode.deps[fromID] == 0 {
		return fmt.Errorf("no edge from %s to %s", fromID, toID)
	}

	toNode.deps[fromID]--
	fromNode.dependents[toID]--
	if toNode.deps[fromID] == 0 {
		delete(toNode.deps, fromID)
		delete(fromNode.dependents, toID)
	}
	return nil
}

// Dependencies returns the IDs of the nodes the given node depends on, in
// insertion order.
func (g *Graph) Dependencies(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return g.sortedIDs(n.deps), nil
}

// Dependents returns the IDs of the nodes that depend on the given node, in
// insertion order.
func (g *Graph) Dependents(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return g.sortedIDs(n.dependents), nil
}

// Ancestors returns the given nodes together with everything they
// transitively depend on. Unknown IDs are ignored.
func (g *Graph) Ancestors(ids ...string) map[string]struct{} {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	seen := make(map[string]struct{})
	stack := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := g.nodes[id]; ok {
			stack = append(stack, id)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		for depID := range g.nodes[id].deps {
			stack = append(stack, depID)
		}
	}
	return seen
}

// DetectCycles checks the graph for any cycles. The returned error wraps
// ErrCycle and spells out the path of the first cycle found.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node, path []string) error
	visit = func(n *node, path []string) error {
		if permanent[n.id] {
			return nil
		}
		path = append(path, n.id)
		if temporary[n.id] {
			start := 0
			for i, id := range path {
				if id == n.id {
					start = i
					break
				}
			}
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(path[start:], " -> "))
		}

		temporary[n.id] = true
		for _, childID := range g.sortedIDs(n.dependents) {
			if err := visit(g.nodes[childID], path); err != nil {
				return err
			}
		}
		delete(temporary, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, n := range g.ordered() {
		if err := visit(n, nil); err != nil {
			return err
		}
	}
	return nil
}

// TopologicalSort returns the IDs of the nodes in `subset` (or of every node
// when subset is nil) ordered so that each node follows its dependencies.
// Among nodes that are ready at the same time, insertion order wins, so the
// result is deterministic.
func (g *Graph) TopologicalSort(subset map[string]struct{}) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	include := func(id string) bool {
		if subset == nil {
			return true
		}
		_, ok := subset[id]
		return ok
	}

	indegree := make(map[string]int)
	var ready []*node
	for _, n := range g.ordered() {
		if !include(n.id) {
			continue
		}
		count := 0
		for depID := range n.deps {
			if include(depID) {
				count++
			}
		}
		indegree[n.id] = count
		if count == 0 {
			ready = append(ready, n)
		}
	}

	order := make([]string, 0, len(indegree))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return ready[i].seq < ready[j].seq })
		n := ready[0]
		ready = ready[1:]
		order = append(order, n.id)

		for childID := range n.dependents {
			if !include(childID) {
				continue
			}
			indegree[childID]--
			if indegree[childID] == 0 {
				ready = append(ready, g.nodes[childID])
			}
		}
	}

	if len(order) != len(indegree) {
		return nil, fmt.Errorf("%w: %d node(s) could not be ordered", ErrCycle, len(indegree)-len(order))
	}
	return order, nil
}

// ordered returns all nodes sorted by insertion order. Callers hold the lock.
func (g *Graph) ordered() []*node {
	nodes := make([]*node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].seq < nodes[j].seq })
	return nodes
}

// sortedIDs returns the keys of an adjacency map in insertion order of the
// referenced nodes. Callers hold the lock.
func (g *Graph) sortedIDs(adj map[string]int) []string {
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return g.nodes[ids[i]].seq < g.nodes[ids[j]].seq })
	return ids
}
