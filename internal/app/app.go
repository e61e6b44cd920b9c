package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/girder/internal/bundle"
	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle: the loaded model, the immutable bundle registry, and the
// writers for plan output and logs.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	registry *bundle.Registry
}

// NewApp loads the build description and bundle registry and returns a
// fully initialized App. Loading happens once, here; a failure to load is
// a fatal startup error and panics, which main recovers into a clean exit.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	paths := []string{cfg.BuildPath}
	if cfg.BundlesPath != "" {
		paths = append(paths, cfg.BundlesPath)
	}

	model, err := loader.Load(ctx, paths...)
	if err != nil {
		panic(fmt.Errorf("failed to load build description: %w", err))
	}
	logger.Debug("Build description loaded.",
		"modules", len(model.Modules), "bundles", len(model.Bundles))

	reg := bundle.NewRegistry(model.Bundles)
	logger.Debug("Bundle registry built.", "bundles", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		model:    model,
		registry: reg,
	}
}

// Model returns the loaded build description. Primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Registry returns the application's bundle registry. Primarily for testing.
func (a *App) Registry() *bundle.Registry {
	return a.registry
}
