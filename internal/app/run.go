package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/pixelgridgo/internal/ctxlog"
	"github.com/vk/pixelgridgo/internal/preset"
	"github.com/vk/pixelgridgo/internal/registry"
	"github.com/vk/pixelgridgo/internal/schemalock"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.WriteLock {
		if err := schemalock.Save(ctx, appConfig.LockPath, lockInput(a.descriptions)); err != nil {
			return fmt.Errorf("failed to write schema lock: %w", err)
		}
		return nil
	}

	if appConfig.PresetPath != "" {
		if err := a.validatePresets(ctx, appConfig.PresetPath); err != nil {
			return err
		}
	}

	descs, err := a.selectDescriptions(appConfig.Effect)
	if err != nil {
		return err
	}

	if appConfig.Output == "json" {
		return a.writeJSON(descs)
	}
	return a.writeText(descs)
}

// selectDescriptions narrows the built descriptions to a single effect when
// one was requested.
func (a *App) selectDescriptions(effect string) ([]registry.Description, error) {
	if effect == "" {
		return a.descriptions, nil
	}
	for _, d := range a.descriptions {
		if d.Info.Type == effect {
			return []registry.Description{d}, nil
		}
	}
	return nil, fmt.Errorf("unknown effect '%s', registered effects: %s", effect, strings.Join(a.registry.Types(), ", "))
}

// validatePresets loads every preset under path and checks it against the
// schema of the effect it targets.
func (a *App) validatePresets(ctx context.Context, path string) error {
	presets, err := preset.LoadPath(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	byType := make(map[string]registry.Description, len(a.descriptions))
	for _, d := range a.descriptions {
		byType[d.Info.Type] = d
	}

	for _, p := range presets {
		desc, ok := byType[p.Effect]
		if !ok {
			return fmt.Errorf("preset '%s' targets unknown effect '%s'", p.Name, p.Effect)
		}
		if err := p.Validate(desc.Params); err != nil {
			return err
		}
		a.logger.Info("Preset validated.", "effect", p.Effect, "preset", p.Name, "values", len(p.Values))
	}

	return nil
}
