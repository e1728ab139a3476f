// Package jumprenderpass provides the JumpRenderPass library. The pass
// rasterizes the scene while reading a visibility buffer and view
// directions produced upstream.
package jumprenderpass

import "github.com/specialistvlad/passgraph/internal/pass"

const LibraryName = "JumpRenderPass"

// Module implements the pass.Module interface for this package.
type Module struct{}

// JumpRenderPass has no options.
var JumpRenderPass = &pass.Type{
	Name:        "JumpRenderPass",
	Description: "Raster pass shading from a packed V-buffer.",
	Inputs: []pass.Channel{
		{Name: "vbuffer", TexName: "gVBuffer", Description: "V-buffer in packed format (indices + barycentrics)", Optional: true, Format: pass.FormatRGBA32Uint},
		{Name: "viewW", TexName: "viewW", Description: "View direction in world space", Optional: true, Format: pass.FormatRGBA32Float},
	},
	Outputs: []pass.Channel{
		{Name: "output", Description: "Output Color texture", Format: pass.FormatRGBA32Float},
	},
}

// Register registers the library with the pass registry.
func (m *Module) Register(r *pass.Registry) {
	r.RegisterLibrary(&pass.Library{
		Name:  LibraryName,
		Types: []*pass.Type{JumpRenderPass},
	})
}
