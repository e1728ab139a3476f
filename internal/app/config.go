package app

import (
	"errors"
	"fmt"
)

// Export formats accepted by Config.Export.
const (
	ExportNone = ""
	ExportDOT  = "dot"
	ExportHCL  = "hcl"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath string // hcl files or directories
	Builtin   bool   // also assemble the embedded scripts

	LogFormat   string
	LogLevel    string
	WorkerCount int

	Export  string // ExportNone, ExportDOT or ExportHCL
	Select  string // graph made active; exported graph
	NoColor bool

	InspectPort int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" && !cfg.Builtin {
		return nil, errors.New("a graph path is required unless the built-in graphs are used")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", cfg.WorkerCount)
	}
	switch cfg.Export {
	case ExportNone, ExportDOT, ExportHCL:
	default:
		return nil, fmt.Errorf("unsupported export format %q: must be %q or %q", cfg.Export, ExportDOT, ExportHCL)
	}
	if cfg.InspectPort < 0 || cfg.InspectPort > 65535 {
		return nil, fmt.Errorf("inspect port %d is out of range", cfg.InspectPort)
	}
	return &cfg, nil
}
