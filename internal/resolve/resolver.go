package resolve

import (
	"context"
	"sort"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/ctxlog"
	"github.com/vk/girder/internal/graph"
	"github.com/vk/girder/internal/version"
)

// Resolution maps each external package name to the one requirement the
// plan will install and link against. The RequestedBy field is cleared on
// resolved entries: the result belongs to the plan, not to any one module.
type Resolution struct {
	packages map[string]config.PackageRequirement
}

// Package returns the resolved requirement for a package name.
func (r *Resolution) Package(name string) (config.PackageRequirement, bool) {
	req, ok := r.packages[name]
	return req, ok
}

// Names returns all resolved package names in lexicographic order.
func (r *Resolution) Names() []string {
	names := make([]string, 0, len(r.packages))
	for name := range r.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve inspects every package node's accumulated requirements and checks
// that all requesting modules agree. A wildcard version is compatible with
// any concrete version, but two distinct concrete versions conflict even
// when wildcards are also present; any disagreement on link type conflicts
// regardless of version. The first conflicting package (lexicographically)
// aborts the whole resolution; there is no per-module partial result.
//
// When all requirements for a package are wildcard, the resolved entry
// carries the latest sentinel for the external installer to settle.
func Resolve(ctx context.Context, g *graph.Graph) (*Resolution, error) {
	logger := ctxlog.FromContext(ctx)
	res := &Resolution{packages: make(map[string]config.PackageRequirement)}

	for _, name := range g.PackageNames() {
		node, _ := g.Package(name)

		resolved, err := resolvePackage(node)
		if err != nil {
			return nil, err
		}
		res.packages[name] = resolved
	}

	logger.Debug("Resolve: all package requirements agree.", "packages", len(res.packages))
	return res, nil
}

// resolvePackage reduces one package's requirement list to a single
// version/link pair, or reports the conflict.
func resolvePackage(node *graph.PackageNode) (config.PackageRequirement, error) {
	link := node.Requirements[0].Link
	resolvedVersion := version.Latest

	var versions []string
	var links []config.LinkType
	conflict := false

	for _, req := range node.Requirements {
		if req.Link != link {
			conflict = true
		}
		appendLink(&links, req.Link)

		if version.IsLatest(req.Version) {
			continue
		}
		if resolvedVersion != version.Latest && req.Version != resolvedVersion {
			conflict = true
		}
		resolvedVersion = req.Version
		appendVersion(&versions, req.Version)
	}

	if conflict {
		return config.PackageRequirement{}, newConflictError(node, versions, links)
	}

	return config.PackageRequirement{
		Name:    node.Name,
		Version: resolvedVersion,
		Link:    link,
	}, nil
}

// appendVersion records a distinct concrete version, keeping the list
// ordered newest-first for reporting.
func appendVersion(versions *[]string, v string) {
	for _, existing := range *versions {
		if existing == v {
			return
		}
	}
	*versions = append(*versions, v)
	sort.Slice(*versions, func(i, j int) bool {
		return version.Compare((*versions)[i], (*versions)[j]) > 0
	})
}

// appendLink records a distinct link type in first-seen order.
func appendLink(links *[]config.LinkType, l config.LinkType) {
	for _, existing := range *links {
		if existing == l {
			return
		}
	}
	*links = append(*links, l)
}
