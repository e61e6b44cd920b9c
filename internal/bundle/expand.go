package bundle

import (
	"context"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/ctxlog"
	"github.com/vk/girder/internal/version"
)

// Expand resolves a single external dependency request against the
// registry. A request naming a registered bundle is replaced by the
// bundle's members in declaration order, each attributed to the original
// requesting module; the caller's version/link overrides, when set, take
// precedence over the bundle's defaults. Any other request passes through
// as a one-element sequence.
//
// Every returned requirement is normalized: Version is the latest sentinel
// when unconstrained and Link defaults to static. Expand never mutates
// the registry, so expanding the same request twice yields the same result.
func (r *Registry) Expand(req config.PackageRequirement) ([]config.PackageRequirement, error) {
	b, ok := r.bundles[req.Name]
	if !ok {
		return []config.PackageRequirement{normalize(req)}, nil
	}

	out := make([]config.PackageRequirement, 0, len(b.Members))
	for _, m := range b.Members {
		// A member that names another bundle has no concrete package
		// behind it; nested bundles are not part of the model.
		if _, nested := r.bundles[m.Name]; nested {
			return nil, &UnknownMemberError{Bundle: b.Name, Member: m.Name}
		}

		member := config.PackageRequirement{
			Name:        m.Name,
			Version:     m.Version,
			Link:        m.Link,
			RequestedBy: req.RequestedBy,
		}
		if req.Version != "" {
			member.Version = req.Version
		}
		if req.Link != "" {
			member.Link = req.Link
		}
		out = append(out, normalize(member))
	}
	return out, nil
}

// ExpandModel rewrites every module's external dependency list with bundle
// references expanded. The input model is left untouched; the result is a
// new model sharing the project and bundle definitions.
func ExpandModel(ctx context.Context, r *Registry, model *config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	expanded := &config.Model{
		Project: model.Project,
		Bundles: model.Bundles,
		Modules: make([]*config.Module, 0, len(model.Modules)),
	}

	for _, mod := range model.Modules {
		out := &config.Module{
			Name:     mod.Name,
			Kind:     mod.Kind,
			Requires: mod.Requires,
		}
		for _, req := range mod.Externals {
			reqs, err := r.Expand(req)
			if err != nil {
				return nil, err
			}
			out.Externals = append(out.Externals, reqs...)
		}
		expanded.Modules = append(expanded.Modules, out)
	}

	logger.Debug("Bundle expansion complete.", "modules", len(expanded.Modules))
	return expanded, nil
}

// normalize fills the explicit defaults: an unconstrained version becomes
// the latest sentinel, an unspecified link type becomes static.
func normalize(req config.PackageRequirement) config.PackageRequirement {
	if req.Version == "" {
		req.Version = version.Latest
	}
	if req.Link == "" {
		req.Link = config.LinkStatic
	}
	return req
}
