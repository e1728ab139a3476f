// Package container provides a thread-safe, in-memory aggregator of
// assembled render graphs keyed by name.
//
// A Store plays the role of the host application's graph container: the
// assembler registers each finished graph exactly once, and readers (the
// report printer, the exporters and the inspection server) look graphs up by
// name. The first graph added becomes the active one until SetActive selects
// another.
//
// Unlike rendergraph.Graph, which is built by a single goroutine, a Store is
// shared by concurrent assembly workers and is guarded by an RWMutex.
package container
