package graph

import (
	"sort"

	"github.com/vk/girder/internal/config"
)

// Graph is the dependency graph of one build description: a node per
// module, a node per distinct external package name, and "depends on"
// edges from modules to both. It is immutable once Build returns.
type Graph struct {
	modules  map[string]*ModuleNode
	packages map[string]*PackageNode
	// order preserves module declaration order for deterministic iteration
	// where declaration order matters (requirement accumulation).
	order []string
}

// ModuleNode is a module vertex with bidirectional adjacency.
type ModuleNode struct {
	Module *config.Module
	// Deps are the internal dependencies of this module (predecessors).
	Deps map[string]*ModuleNode
	// Dependents are the modules depending on this one (successors).
	Dependents map[string]*ModuleNode
}

// PackageNode is an external package vertex. It accumulates every
// requirement made for its name, in module declaration order, for the
// conflict resolver to inspect.
type PackageNode struct {
	Name         string
	Requirements []config.PackageRequirement
}

// Module returns the module node with the given name, if present.
func (g *Graph) Module(name string) (*ModuleNode, bool) {
	n, ok := g.modules[name]
	return n, ok
}

// Package returns the package node with the given name, if present.
func (g *Graph) Package(name string) (*PackageNode, bool) {
	p, ok := g.packages[name]
	return p, ok
}

// ModuleNames returns all module names in lexicographic order.
func (g *Graph) ModuleNames() []string {
	names := make([]string, 0, len(g.modules))
	for name := range g.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PackageNames returns all external package names in lexicographic order.
func (g *Graph) PackageNames() []string {
	names := make([]string, 0, len(g.packages))
	for name := range g.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModuleCount returns the number of module nodes.
func (g *Graph) ModuleCount() int {
	return len(g.modules)
}

// SortedDeps returns a node's internal dependencies in lexicographic order,
// so traversals over map-backed adjacency stay reproducible.
func SortedDeps(n *ModuleNode) []*ModuleNode {
	names := make([]string, 0, len(n.Deps))
	for name := range n.Deps {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]*ModuleNode, len(names))
	for i, name := range names {
		deps[i] = n.Deps[name]
	}
	return deps
}
