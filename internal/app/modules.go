package app

import (
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/modules/accumulatepass"
	"github.com/specialistvlad/passgraph/modules/gbuffer"
	"github.com/specialistvlad/passgraph/modules/jumprenderpass"
	"github.com/specialistvlad/passgraph/modules/renderpass01"
)

// coreModules is the definitive list of all pass libraries that are compiled
// into the passgraph binary.
var coreModules = []pass.Module{
	&gbuffer.Module{},
	&accumulatepass.Module{},
	&jumprenderpass.Module{},
	&renderpass01.Module{},
}
