package container

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/specialistvlad/passgraph/internal/rendergraph"
)

var (
	// ErrDuplicateGraph is returned when a graph with the same name is
	// already registered.
	ErrDuplicateGraph = errors.New("graph already registered")
	// ErrGraphNotFound is returned when no graph with the given name exists.
	ErrGraphNotFound = errors.New("graph not found")
	// ErrNilGraph is returned when AddGraph receives a nil graph.
	ErrNilGraph = errors.New("nil graph")
	// ErrNilStore is returned when AddGraph is called on a nil *Store.
	ErrNilStore = errors.New("nil graph store")
)

// Store is an in-memory collection of named render graphs.
type Store struct {
	mu     sync.RWMutex
	graphs map[string]*rendergraph.Graph
	active string
}

// New creates a new, empty store.
func New() *Store {
	return &Store{graphs: make(map[string]*rendergraph.Graph)}
}

// AddGraph registers a graph under its own name.
func (s *Store) AddGraph(ctx context.Context, g *rendergraph.Graph) error {
	if s == nil {
		return ErrNilStore
	}
	if g == nil {
		return ErrNilGraph
	}
	logger := ctxlog.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	name := g.Name()
	if _, exists := s.graphs[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateGraph, name)
	}
	s.graphs[name] = g
	if s.active == "" {
		s.active = name
	}
	logger.Debug("Graph added to container.", "graph", name, "total", len(s.graphs))
	return nil
}

// Graph returns the graph registered under name.
func (s *Store) Graph(name string) (*rendergraph.Graph, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.graphs[name]
	return g, ok
}

// Names returns the names of all registered graphs in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.graphs))
	for name := range s.graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered graphs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.graphs)
}

// Remove unregisters a graph. Removing the active graph makes the first
// remaining graph, in name order, active.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	delete(s.graphs, name)

	if s.active == name {
		s.active = ""
		for candidate := range s.graphs {
			if s.active == "" || candidate < s.active {
				s.active = candidate
			}
		}
	}
	return nil
}

// Active returns the active graph, or false when the store is empty.
func (s *Store) Active() (*rendergraph.Graph, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == "" {
		return nil, false
	}
	return s.graphs[s.active], true
}

// SetActive selects the active graph.
func (s *Store) SetActive(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.graphs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	s.active = name
	return nil
}
