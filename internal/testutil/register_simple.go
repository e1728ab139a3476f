package testutil

import (
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/zclconf/go-cty/cty"
)

// SimpleModule is a test helper for registering a single ad-hoc pass library
// together with the enums its options reference.
type SimpleModule struct {
	Library *pass.Library
	Enums   []*pass.Enum
}

// Register implements the pass.Module interface.
func (m *SimpleModule) Register(r *pass.Registry) {
	for _, e := range m.Enums {
		r.RegisterEnum(e)
	}
	if m.Library != nil {
		r.RegisterLibrary(m.Library)
	}
}

// SourceSinkModule returns a library "Test" with two pass types: "Source"
// with output "out", and "Sink" with a required input "in" and output "out".
// Sink has an integer option "weight" defaulting to 1.
func SourceSinkModule() *SimpleModule {
	return &SimpleModule{Library: &pass.Library{
		Name: "Test",
		Types: []*pass.Type{
			{
				Name:    "Source",
				Outputs: []pass.Channel{{Name: "out", Format: pass.FormatRGBA32Float}},
			},
			{
				Name:    "Sink",
				Inputs:  []pass.Channel{{Name: "in"}},
				Outputs: []pass.Channel{{Name: "out", Format: pass.FormatRGBA32Float}},
				Options: []pass.OptionSpec{{
					Name:    "weight",
					Type:    cty.Number,
					Default: cty.NumberIntVal(1),
					Check:   pass.WholeNumberAtLeast(0),
				}},
			},
		},
	}}
}
