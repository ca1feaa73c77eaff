package preset

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/vk/pixelgridgo/internal/schema"
)

// Preset is the format-agnostic representation of one saved preset: the
// effect it targets and the parameter values it stores, keyed by symbolic
// parameter name.
type Preset struct {
	Effect string
	Name   string
	Values map[string]float64
}

// Loader is the interface for a format-specific preset loader.
type Loader interface {
	// Load reads all presets from a single file and translates them into
	// the format-agnostic representation.
	Load(ctx context.Context, path string) ([]*Preset, error)
}

// Validate checks the preset's values against the effect's parameter
// schema. Unknown names, button parameters, non-integral seeds, and values
// outside the absolute bounds are errors, collected and reported in
// aggregate. Slider bounds are a UI concern and never constrain a stored
// value.
func (p *Preset) Validate(list *schema.List) error {
	var errs []string
	for name, value := range p.Values {
		entry, ok := list.ByName(name)
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown parameter '%s'", name))
			continue
		}
		if !entry.Numeric() {
			errs = append(errs, fmt.Sprintf("parameter '%s' is a %s and holds no value", name, entry.Kind))
			continue
		}
		if entry.Kind == schema.KindSeed && value != math.Trunc(value) {
			errs = append(errs, fmt.Sprintf("parameter '%s': seed value %g is not an integer", name, value))
			continue
		}
		if value < entry.Min || value > entry.Max {
			errs = append(errs, fmt.Sprintf("parameter '%s': value %g outside absolute range [%g, %g]",
				name, value, entry.Min, entry.Max))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("preset '%s' for effect '%s' is invalid:\n- %s", p.Name, p.Effect, strings.Join(errs, "\n- "))
	}
	return nil
}
