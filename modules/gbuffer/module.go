// Package gbuffer provides the GBuffer pass library: rasterized and
// ray-traced passes producing geometry buffers and visibility buffers.
package gbuffer

import (
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/zclconf/go-cty/cty"
)

// LibraryName is the name scripts load this library by.
const LibraryName = "GBuffer"

// Module implements the pass.Module interface for this package.
type Module struct{}

// SamplePattern selects the camera jitter pattern.
var SamplePattern = &pass.Enum{
	Name:   "SamplePattern",
	Values: []string{"Center", "DirectX", "Halton", "Stratified"},
}

// CullMode selects which triangle faces are culled.
var CullMode = &pass.Enum{
	Name:   "CullMode",
	Values: []string{"None", "Front", "Back"},
}

// IOSize selects how output resources are sized relative to the frame.
var IOSize = &pass.Enum{
	Name:   "IOSize",
	Values: []string{"Default", "Fixed", "Full", "Half", "Quarter", "Double"},
}

// commonOptions are shared by every pass of the library.
func commonOptions() []pass.OptionSpec {
	return []pass.OptionSpec{
		{Name: "outputSize", Type: cty.String, Default: cty.StringVal("Default"), Enum: IOSize.Name, Description: "Output buffer size selection."},
		{Name: "samplePattern", Type: cty.String, Default: cty.StringVal("Center"), Enum: SamplePattern.Name, Description: "Camera jitter sample pattern."},
		{Name: "sampleCount", Type: cty.Number, Default: cty.NumberIntVal(16), Check: pass.WholeNumberAtLeast(1), Description: "Number of samples in the jitter pattern."},
		{Name: "useAlphaTest", Type: cty.Bool, Default: cty.True, Description: "Enable alpha test."},
		{Name: "adjustShadingNormals", Type: cty.Bool, Default: cty.True, Description: "Adjust shading normals."},
		{Name: "forceCullMode", Type: cty.Bool, Default: cty.False, Description: "Override the scene's cull mode."},
		{Name: "cull", Type: cty.String, Default: cty.StringVal("Back"), Enum: CullMode.Name, Description: "Cull mode used when forceCullMode is set."},
	}
}

// gbufferChannels are the optional geometry outputs of GBufferRaster.
var gbufferChannels = []pass.Channel{
	{Name: "posW", Description: "Position in world space", Optional: true, Format: pass.FormatRGBA32Float},
	{Name: "normW", Description: "Shading normal in world space", Optional: true, Format: pass.FormatRGBA32Float},
	{Name: "tangentW", Description: "Shading tangent in world space (xyz) and sign (w)", Optional: true, Format: pass.FormatRGBA32Float},
	{Name: "faceNormalW", Description: "Face normal in world space", Optional: true, Format: pass.FormatRGBA32Float},
	{Name: "texC", Description: "Texture coordinate", Optional: true, Format: pass.FormatRG32Float},
	{Name: "texGrads", Description: "Texture gradients (ddx, ddy)", Optional: true, Format: pass.FormatRGBA16Float},
	{Name: "mvec", Description: "Motion vector", Optional: true, Format: pass.FormatRG32Float},
	{Name: "mtlData", Description: "Material data (ID, header.x, header.y, lobes)", Optional: true, Format: pass.FormatRGBA32Uint},
	{Name: "vbuffer", Description: "Visibility buffer in packed format", Optional: true, Format: pass.FormatRGBA32Uint},
	{Name: "depth", Description: "Depth buffer (NDC)", Optional: true, Format: pass.FormatD32Float},
	{Name: "diffuseOpacity", Description: "Diffuse reflection albedo and opacity", Optional: true, Format: pass.FormatRGBA32Float},
	{Name: "specRough", Description: "Specular reflectance and roughness", Optional: true, Format: pass.FormatRGBA32Float},
	{Name: "emissive", Description: "Emissive color", Optional: true, Format: pass.FormatRGBA32Float},
	{Name: "viewW", Description: "View direction in world space", Optional: true, Format: pass.FormatRGBA32Float},
	{Name: "linearZ", Description: "Linear z (and derivative)", Optional: true, Format: pass.FormatRG32Float},
	{Name: "mask", Description: "Mask", Optional: true, Format: pass.FormatR32Float},
}

// GBufferRaster rasterizes the scene into a G-buffer.
var GBufferRaster = &pass.Type{
	Name:        "GBufferRaster",
	Description: "Rasterized G-buffer generation pass.",
	Outputs:     gbufferChannels,
	Options:     commonOptions(),
}

// VBufferRT traces primary rays into a visibility buffer.
var VBufferRT = &pass.Type{
	Name:        "VBufferRT",
	Description: "Ray traced V-buffer generation pass.",
	Outputs: []pass.Channel{
		{Name: "vbuffer", Description: "Visibility buffer in packed format", Format: pass.FormatRGBA32Uint},
		{Name: "depth", Description: "Depth buffer (NDC)", Optional: true, Format: pass.FormatR32Float},
		{Name: "mvec", Description: "Motion vector", Optional: true, Format: pass.FormatRG32Float},
		{Name: "viewW", Description: "View direction in world space", Optional: true, Format: pass.FormatRGBA32Float},
		{Name: "time", Description: "Per-pixel execution time", Optional: true, Format: pass.FormatR32Uint},
		{Name: "mask", Description: "Mask", Optional: true, Format: pass.FormatR32Float},
	},
	Options: append(commonOptions(),
		pass.OptionSpec{Name: "useTraceRayInline", Type: cty.Bool, Default: cty.False, Description: "Use inline ray tracing."},
		pass.OptionSpec{Name: "useDOF", Type: cty.Bool, Default: cty.True, Description: "Enable depth of field."},
	),
}

// Register registers the library and its enums with the pass registry.
func (m *Module) Register(r *pass.Registry) {
	r.RegisterEnum(SamplePattern)
	r.RegisterEnum(CullMode)
	r.RegisterEnum(IOSize)
	r.RegisterLibrary(&pass.Library{
		Name:  LibraryName,
		Types: []*pass.Type{GBufferRaster, VBufferRT},
	})
}
