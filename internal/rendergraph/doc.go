/*
Package rendergraph implements the render graph: a named, directed graph of
configured render passes connected through their channels.

A graph is assembled by sequential calls:

 1. AddPass registers a configured pass instance under a unique name.
 2. AddEdge connects an output channel of one pass to an input channel of
    another, addressed as "node.port". Connecting two bare pass names
    instead creates an execution edge, which only orders the two passes.
 3. MarkOutput designates which output channels are externally observable.

Every call checks its arguments against the passes already added and the
channels their pass types declare, so a graph can never hold an edge or an
output marker that points at nothing. Whole-graph properties (cycles,
required inputs left unbound, missing outputs) are checked by Validate, and
Compile derives the execution order of the passes that contribute to the
marked outputs.

Graphs are built by one goroutine and treated as read-only once handed to a
container.
*/
package rendergraph
