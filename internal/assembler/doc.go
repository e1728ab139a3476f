// Package assembler turns a declarative graph script into a validated
// rendergraph.Graph.
//
// Assembly is one linear walk over the script: every library is loaded
// through the Host, every pass is created and added, every edge is connected,
// every output is marked, and the finished graph is validated. The result is
// then registered with the Container, when one is supplied, exactly once.
// Any failure stops the walk and is returned wrapped with the graph name and
// the step that failed; a partially built graph is never registered.
package assembler
