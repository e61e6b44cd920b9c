package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/girder/internal/bundle"
	"github.com/vk/girder/internal/ctxlog"
	"github.com/vk/girder/internal/graph"
	"github.com/vk/girder/internal/plan"
	"github.com/vk/girder/internal/resolve"
)

// Run executes the resolution pipeline: expand bundles, build the graph,
// detect cycles, resolve package conflicts, order the modules and emit the
// plan. Every stage fails closed: the first error aborts and no partial
// plan is written.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.")

	p, err := a.Compile(ctx)
	if err != nil {
		return err
	}

	out := a.outW
	if a.config.OutPath != "" {
		f, err := os.Create(a.config.OutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := plan.WriteJSON(out, p); err != nil {
		return err
	}

	a.logger.Info("Build plan written.",
		"targets", len(p.Targets), "install_entries", len(p.Install))
	return nil
}

// Compile runs the pipeline and returns the plan without writing it.
func (a *App) Compile(ctx context.Context) (*plan.BuildPlan, error) {
	expanded, err := bundle.ExpandModel(ctx, a.registry, a.model)
	if err != nil {
		return nil, fmt.Errorf("bundle expansion failed: %w", err)
	}

	g, err := graph.Build(ctx, expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.logger.Debug("Dependency graph built.", "modules", g.ModuleCount())

	if err := g.DetectCycles(ctx); err != nil {
		return nil, fmt.Errorf("dependency graph validation failed: %w", err)
	}

	res, err := resolve.Resolve(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("package resolution failed: %w", err)
	}

	order := g.TopoOrder(ctx)
	p := plan.Emit(ctx, g, order, res, expanded.Project)

	a.logger.Debug("Pipeline complete.", "order", order)
	return p, nil
}
