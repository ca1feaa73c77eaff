// Package cellular declares the parameter schema of the cellular (Voronoi
// style) generator.
package cellular

import (
	"github.com/vk/pixelgridgo/internal/registry"
	"github.com/vk/pixelgridgo/internal/schema"
)

// Stable parameter IDs for the cellular effect. Persisted by the host;
// append new IDs above paramSentinel only.
const (
	ParamInput          schema.ID = iota // reserved, host input layer
	ParamSeed                            // 1
	ParamScale                           // 2
	ParamJitter                          // 3
	ParamEvolve1                         // 4
	ParamEvolve2                         // 5
	ParamReroll                          // 6
	ParamTranslateX                      // 7, first of the input-transform block
	ParamTranslateY                      // 8
	ParamRotation                        // 9
	ParamTransformScale                  // 10

	paramSentinel
)

// BuildParams produces the complete, ordered parameter list for the effect.
func BuildParams() (*schema.List, error) {
	l := schema.NewList()
	err := l.Append(
		schema.Seed(ParamSeed, "seed", "Seed"),
		schema.Float(ParamScale, "scale", "Scale", 0.0000001, 10000, 1, 0.000001, 100, 2),
		schema.Float(ParamJitter, "jitter", "Jitter", 0, 1, 1, 0, 1, 2),
		schema.Float(ParamEvolve1, "evolve1", "Evolution", -10000, 10000, 0, 0, 10, 2),
		schema.Float(ParamEvolve2, "evolve2", "Evolution Detail", -10000, 10000, 0, 0, 10, 2),
		schema.Button(ParamReroll, "reroll", "New Seed"),
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
	r.RegisterEffect("cellular", &registry.RegisteredEffect{
		Info: registry.Info{
			Type:        "cellular",
			DisplayName: "Cellular",
			Description: "Cellular noise generator with per-cell jitter.",
			Version:     "1.0.0",
		},
		BuildParams: BuildParams,
	})
}
