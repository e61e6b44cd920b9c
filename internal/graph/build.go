package graph

import (
	"context"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/ctxlog"
)

// Build constructs the dependency graph from an expanded model. The first
// pass creates a node per module; the second links internal dependencies,
// failing on a reference to a module that does not exist; the third adds a
// package node per distinct external name and accumulates the requirement
// lists the conflict resolver needs.
//
// Build expects the model to be past bundle expansion: every external
// requirement carries a concrete link type and either a concrete version or
// the latest sentinel.
func Build(ctx context.Context, model *config.Model) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.")

	g := &Graph{
		modules:  make(map[string]*ModuleNode, len(model.Modules)),
		packages: make(map[string]*PackageNode),
	}

	for _, mod := range model.Modules {
		g.modules[mod.Name] = &ModuleNode{
			Module:     mod,
			Deps:       make(map[string]*ModuleNode),
			Dependents: make(map[string]*ModuleNode),
		}
		g.order = append(g.order, mod.Name)
	}
	logger.Debug("Build: module nodes created.", "count", len(g.modules))

	for _, name := range g.order {
		node := g.modules[name]
		for _, depName := range node.Module.Requires {
			dep, ok := g.modules[depName]
			if !ok {
				return nil, &UnresolvedReferenceError{Module: name, Reference: depName}
			}
			node.Deps[depName] = dep
			dep.Dependents[name] = node
		}
	}
	logger.Debug("Build: internal dependencies linked.")

	for _, name := range g.order {
		node := g.modules[name]
		for _, req := range node.Module.Externals {
			pkg, ok := g.packages[req.Name]
			if !ok {
				pkg = &PackageNode{Name: req.Name}
				g.packages[req.Name] = pkg
			}
			pkg.Requirements = append(pkg.Requirements, req)
		}
	}
	logger.Debug("Build: package nodes created.", "count", len(g.packages))

	return g, nil
}
