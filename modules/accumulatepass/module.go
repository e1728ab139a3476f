// Package accumulatepass provides the AccumulatePass library, a temporal
// accumulation pass averaging its input over frames.
package accumulatepass

import (
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/zclconf/go-cty/cty"
)

const LibraryName = "AccumulatePass"

// Module implements the pass.Module interface for this package.
type Module struct{}

// Precision selects the accumulation arithmetic.
var Precision = &pass.Enum{
	Name:   "AccumulatePrecision",
	Values: []string{"Double", "Single", "SingleCompensated"},
}

// OverflowMode selects what happens once maxFrameCount is reached.
var OverflowMode = &pass.Enum{
	Name:   "AccumulateOverflowMode",
	Values: []string{"Stop", "Reset", "EMA"},
}

// AccumulatePass accumulates its input over consecutive frames.
var AccumulatePass = &pass.Type{
	Name:        "AccumulatePass",
	Description: "Temporal accumulation.",
	Inputs: []pass.Channel{
		{Name: "input", Description: "Input data to be temporally accumulated"},
	},
	Outputs: []pass.Channel{
		{Name: "output", Description: "Output data that is temporally accumulated", Format: pass.FormatRGBA32Float},
	},
	Options: []pass.OptionSpec{
		{Name: "enabled", Type: cty.Bool, Default: cty.True},
		{Name: "autoReset", Type: cty.Bool, Default: cty.True, Description: "Reset accumulation when the scene changes."},
		{Name: "precisionMode", Type: cty.String, Default: cty.StringVal("Single"), Enum: Precision.Name},
		{Name: "subFrameCount", Type: cty.Number, Default: cty.NumberIntVal(0), Check: pass.WholeNumberAtLeast(0)},
		{Name: "maxFrameCount", Type: cty.Number, Default: cty.NumberIntVal(0), Check: pass.WholeNumberAtLeast(0), Description: "0 means unlimited."},
		{Name: "overflowMode", Type: cty.String, Default: cty.StringVal("Stop"), Enum: OverflowMode.Name},
	},
}

// Register registers the library and its enums with the pass registry.
func (m *Module) Register(r *pass.Registry) {
	r.RegisterEnum(Precision)
	r.RegisterEnum(OverflowMode)
	r.RegisterLibrary(&pass.Library{
		Name:  LibraryName,
		Types: []*pass.Type{AccumulatePass},
	})
}
