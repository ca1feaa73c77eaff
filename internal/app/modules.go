package app

import (
	"github.com/vk/pixelgridgo/internal/effects/cellular"
	"github.com/vk/pixelgridgo/internal/effects/turbulent"
	"github.com/vk/pixelgridgo/internal/registry"
)

// coreModules is the definitive list of all effects that are compiled into
// the pixelgridgo binary. Order here is the order the host sees.
var coreModules = []registry.Module{
	&turbulent.Module{},
	&cellular.Module{},
}
