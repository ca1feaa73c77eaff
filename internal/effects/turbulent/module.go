// Package turbulent declares the parameter schema of the turbulent noise
// generator, the flagship effect of the suite.
package turbulent

import (
	"github.com/vk/pixelgridgo/internal/registry"
	"github.com/vk/pixelgridgo/internal/schema"
)

// Stable parameter IDs for the turbulent effect. These values are persisted
// in user documents by the host: append new IDs above paramSentinel, never
// reorder or reuse existing ones.
const (
	ParamInput           schema.ID = iota // reserved, host input layer
	ParamSeed                             // 1
	ParamScale                            // 2
	ParamDirectionalBias                  // 3
	ParamEvolve1                          // 4
	ParamEvolve2                          // 5
	ParamTranslateX                       // 6, first of the input-transform block
	ParamTranslateY                       // 7
	ParamRotation                         // 8
	ParamTransformScale                   // 9

	paramSentinel
)

// BuildParams produces the complete, ordered parameter list for the effect.
// It consults no external state; two successive calls yield identical lists.
func BuildParams() (*schema.List, error) {
	l := schema.NewList()
	err := l.Append(
		schema.Seed(ParamSeed, "seed", "Seed"),
		schema.Float(ParamScale, "scale", "Scale", 0.0000001, 10000, 1, 0.000001, 100, 2),
		schema.Float(ParamDirectionalBias, "directional_bias", "Directional Bias", -10000, 10000, 0, -100, 100, 2),
		schema.Float(ParamEvolve1, "evolve1", "Evolution", -10000, 10000, 0, 0, 10, 2),
		schema.Float(ParamEvolve2, "evolve2", "Evolution Detail", -10000, 10000, 0, 0, 10, 2),
	)
	if err != nil {
		return nil, err
	}
	if err := schema.AppendInputTransform(l, ParamTranslateX); err != nil {
		return nil, err
	}
	return l, nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the effect with the suite registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEffect("turbulent", &registry.RegisteredEffect{
		Info: registry.Info{
			Type:        "turbulent",
			DisplayName: "Turbulent Noise",
			Description: "Directional fractal noise generator.",
			Version:     "1.0.0",
		},
		BuildParams: BuildParams,
	})
}
