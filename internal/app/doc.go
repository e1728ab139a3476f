// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary lifecycle: build the pass
// registry from the compiled-in modules, load graph scripts, assemble every
// graph into the container, then report, export or serve the results. It is
// decoupled from any specific entrypoint like a CLI.
package app
