// Package config defines the format-agnostic model of render graph scripts,
// along with the Loader interface for reading scripts from various sources.
//
// The config.Model is the single source of truth for the assembler. Concrete
// loaders, such as the HCL one, are provided in separate packages.
package config
