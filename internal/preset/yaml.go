package preset

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/pixelgridgo/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader loads presets from .yaml and .yml files.
type YAMLLoader struct{}

// yamlFileSchema is the top-level structure of a YAML preset file.
type yamlFileSchema struct {
	Presets []yamlPreset `yaml:"presets"`
}

type yamlPreset struct {
	Effect string             `yaml:"effect"`
	Name   string             `yaml:"name"`
	Values map[string]float64 `yaml:"values"`
}

// Load decodes a YAML file that contains a list of presets.
func (YAMLLoader) Load(ctx context.Context, path string) ([]*Preset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML preset file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw yamlFileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode preset file %s: %w", path, err)
	}

	presets := make([]*Preset, 0, len(raw.Presets))
	for _, p := range raw.Presets {
		if p.Effect == "" || p.Name == "" {
			return nil, fmt.Errorf("preset file %s: every preset needs an effect and a name", path)
		}
		presets = append(presets, &Preset{
			Effect: p.Effect,
			Name:   p.Name,
			Values: p.Values,
		})
	}

	logger.Debug("YAML preset file loaded.", "path", path, "presets", len(presets))
	return presets, nil
}
