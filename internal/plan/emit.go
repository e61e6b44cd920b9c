package plan

import (
	"context"
	"sort"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/ctxlog"
	"github.com/vk/girder/internal/graph"
	"github.com/vk/girder/internal/resolve"
)

// Emit builds the final plan from the verified graph, the topological order
// and the per-package resolution.
func Emit(ctx context.Context, g *graph.Graph, order []string, res *resolve.Resolution, project config.Project) *BuildPlan {
	logger := ctxlog.FromContext(ctx)

	p := &BuildPlan{
		Project: project,
		Order:   order,
		Targets: make(map[string]*Target, len(order)),
	}

	for _, name := range order {
		node, _ := g.Module(name)
		p.Targets[name] = emitTarget(node, res)
	}

	for _, name := range res.Names() {
		req, _ := res.Package(name)
		p.Install = append(p.Install, InstallEntry{
			Package: req.Name,
			Version: req.Version,
			Link:    req.Link,
			Triplet: project.Triplet,
		})
	}

	logger.Debug("Emit: build plan materialized.", "targets", len(p.Targets), "install_entries", len(p.Install))
	return p
}

// emitTarget computes one module's descriptor. Link order is a post-order
// walk of the module's internal dependency subgraph: dependencies before
// dependents, first occurrence kept. The walk stops at dynamic libraries:
// a consumer links the dynamic library itself, never its internals, so
// neither their sub-dependencies nor their external packages leak upward.
// Static and header-only dependencies are traversed in full, since their
// own link-time needs become the consumer's.
func emitTarget(root *graph.ModuleNode, res *resolve.Resolution) *Target {
	t := &Target{
		Name: root.Module.Name,
		Kind: root.Module.Kind,
	}

	seen := make(map[string]bool)
	externals := make(map[string]config.PackageRequirement)

	var visit func(n *graph.ModuleNode, isRoot bool)
	visit = func(n *graph.ModuleNode, isRoot bool) {
		name := n.Module.Name
		if seen[name] {
			return
		}
		seen[name] = true

		opaque := !isRoot && n.Module.Kind == config.KindDynamicLibrary
		if !opaque {
			for _, dep := range graph.SortedDeps(n) {
				visit(dep, false)
			}
			for _, req := range n.Module.Externals {
				if _, ok := externals[req.Name]; ok {
					continue
				}
				if resolved, ok := res.Package(req.Name); ok {
					externals[req.Name] = resolved
				}
			}
		}
		t.LinkOrder = append(t.LinkOrder, name)
	}
	visit(root, true)

	names := make([]string, 0, len(externals))
	for name := range externals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.ExternalPackages = append(t.ExternalPackages, externals[name])
	}
	return t
}
