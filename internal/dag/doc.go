// Package dag is the generic topology layer underneath a render graph. It
// tracks which passes depend on which, detects cycles, and produces a stable
// topological order. Port-level detail lives in the rendergraph package; here
// every node is just a string ID.
package dag
