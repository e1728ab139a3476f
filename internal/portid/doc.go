/*
Package portid provides a structured representation of render graph port
addresses, based on the canonical format `node.port`.

A port address names an input or output channel of a pass node, e.g.
`GBufferRaster.vbuffer`. The short form `node` (no port) names the pass
itself and is used for execution edges, which order two passes without
carrying a resource between them.

This package centralizes all formatting and parsing of addresses so that the
graph, the script loader and the exporters agree on a single syntax.
*/
package portid
