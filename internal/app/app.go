package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/pixelgridgo/internal/ctxlog"
	"github.com/vk/pixelgridgo/internal/registry"
	"github.com/vk/pixelgridgo/internal/schemalock"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW         io.Writer
	logger       *slog.Logger
	registry     *registry.Registry
	descriptions []registry.Description
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, all
// effect schemas built, and the schema lock verified.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with the compiled-in effects.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All effect modules registered.", "count", len(modules))

	// Build every schema up front. A broken parameter table is a programmer
	// error, so we panic; the entrypoint recovers and reports it.
	descs, err := reg.DescribeAll(ctx)
	if err != nil {
		panic(err)
	}

	// Verify shipped IDs against the lock file, unless we are about to
	// rewrite it.
	if appConfig.LockPath != "" && !appConfig.WriteLock {
		if _, statErr := os.Stat(appConfig.LockPath); os.IsNotExist(statErr) {
			logger.Warn("Schema lock file not found, skipping stable-ID check.", "path", appConfig.LockPath)
		} else {
			lock, err := schemalock.Load(ctx, appConfig.LockPath)
			if err != nil {
				panic(fmt.Errorf("failed to load schema lock: %w", err))
			}
			if err := lock.Check(ctx, lockInput(descs)); err != nil {
				panic(err)
			}
		}
	}

	return &App{
		outW:         outW,
		logger:       logger,
		registry:     reg,
		descriptions: descs,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// lockInput converts descriptions into the schemalock input form,
// preserving registration order.
func lockInput(descs []registry.Description) []schemalock.EffectParams {
	out := make([]schemalock.EffectParams, 0, len(descs))
	for _, d := range descs {
		out = append(out, schemalock.EffectParams{Type: d.Info.Type, Params: d.Params})
	}
	return out
}
