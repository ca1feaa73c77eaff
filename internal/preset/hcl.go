package preset

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pixelgridgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// HCLLoader loads presets from .hcl files.
type HCLLoader struct{}

// presetFileSchema is the top-level structure of a preset file for decoding.
type presetFileSchema struct {
	Presets []*presetBlock `hcl:"preset,block"`
}

// presetBlock represents a single 'preset' block for decoding purposes. The
// values attribute stays an expression until evaluation so that decoding
// and value typing report separate errors.
type presetBlock struct {
	Effect string         `hcl:"effect_type,label"`
	Name   string         `hcl:"preset_name,label"`
	Values hcl.Expression `hcl:"values"`
}

// Load decodes an HCL file that contains one or more 'preset' blocks.
func (HCLLoader) Load(ctx context.Context, path string) ([]*Preset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL preset file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse preset file %s: %w", path, diags)
	}

	var raw presetFileSchema
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode preset file %s: %w", path, diags)
	}

	presets := make([]*Preset, 0, len(raw.Presets))
	for _, blk := range raw.Presets {
		values, err := evalValues(blk.Values)
		if err != nil {
			return nil, fmt.Errorf("preset '%s' for effect '%s' in %s: %w", blk.Name, blk.Effect, path, err)
		}
		presets = append(presets, &Preset{
			Effect: blk.Effect,
			Name:   blk.Name,
			Values: values,
		})
	}

	logger.Debug("HCL preset file loaded.", "path", path, "presets", len(presets))
	return presets, nil
}

// evalValues evaluates the values expression into a name-to-number map.
// Presets are static documents, so evaluation uses no variable scope.
func evalValues(expr hcl.Expression) (map[string]float64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate values: %w", diags)
	}
	// Tuples and lists are iterable too, but their keys are numbers; only
	// object and map values name their elements.
	if val.IsNull() || !(val.Type().IsObjectType() || val.Type().IsMapType()) {
		return nil, fmt.Errorf("values must be an object of parameter names to numbers")
	}

	out := make(map[string]float64)
	for it := val.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		name := key.AsString()

		num, err := convert.Convert(elem, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("value for '%s' is not a number: %w", name, err)
		}
		f, _ := num.AsBigFloat().Float64()
		out[name] = f
	}
	return out, nil
}
