// Package renderpass01 provides the RenderPass01 library, a ray traced
// shading pass consuming a visibility buffer.
package renderpass01

import "github.com/specialistvlad/passgraph/internal/pass"

const LibraryName = "RenderPass01"

// Module implements the pass.Module interface for this package.
type Module struct{}

var RenderPass01 = &pass.Type{
	Name:        "RenderPass01",
	Description: "Ray traced shading from a visibility buffer.",
	Inputs: []pass.Channel{
		{Name: "vbuffer", TexName: "gVBuffer", Description: "Visibility buffer in packed format"},
		{Name: "viewW", TexName: "gViewW", Description: "World-space view direction (xyz float format)", Optional: true},
	},
	Outputs: []pass.Channel{
		{Name: "color", TexName: "outputColor", Description: "Output color (sum of direct and indirect)", Format: pass.FormatRGBA32Float},
	},
}

// Register registers the library with the pass registry.
func (m *Module) Register(r *pass.Registry) {
	r.RegisterLibrary(&pass.Library{
		Name:  LibraryName,
		Types: []*pass.Type{RenderPass01},
	})
}
