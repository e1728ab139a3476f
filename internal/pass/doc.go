// Package pass holds the catalogue of render pass types a graph can be built
// from.
//
// Pass types are compiled into the binary and grouped into libraries, the
// equivalent of the plugin binaries a rendering host loads at runtime. A
// graph description must load a library by name before it can create passes
// of the types that library provides. Each pass type describes itself
// through reflection data only: its input and output channels and the
// options it accepts. The pass implementations themselves live in the host.
//
// The Registry is the single place where libraries, enums and option schemas
// meet. It is populated once at startup by compiled-in modules, validated for
// internal consistency, and then used by the assembler to load libraries and
// create configured pass instances.
package pass
