package hcl

import (
	"context"
	"fmt"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/ctxlog"
	"github.com/vk/girder/internal/schema"
	"github.com/vk/girder/internal/version"
)

// translate merges the decoded file roots into a single config.Model and
// validates everything the pipeline relies on: unique module names, known
// enum values, parseable version strings. Duplicate module names are the
// first error kind in pipeline order, so they are checked before anything
// else about a module.
func (l *Loader) translate(ctx context.Context, roots []*schema.FileRoot) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}

	for _, root := range roots {
		if root.Project != nil {
			if model.Project != (config.Project{}) {
				return nil, fmt.Errorf("more than one project block declared")
			}
			model.Project = config.Project(*root.Project)
		}

		for _, m := range root.Modules {
			if _, exists := model.ModuleByName(m.Name); exists {
				return nil, &config.DuplicateModuleNameError{Name: m.Name}
			}
			mod, err := translateModule(m)
			if err != nil {
				return nil, err
			}
			model.Modules = append(model.Modules, mod)
		}

		for _, b := range root.Bundles {
			bundle, err := translateBundle(b)
			if err != nil {
				return nil, err
			}
			for _, existing := range model.Bundles {
				if existing.Name == bundle.Name {
					return nil, fmt.Errorf("bundle %q is declared more than once", bundle.Name)
				}
			}
			model.Bundles = append(model.Bundles, bundle)
		}
	}

	logger.Debug("Translation complete.", "modules", len(model.Modules))
	return model, nil
}

// translateModule validates and converts one module block.
func translateModule(m *schema.Module) (*config.Module, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("module with empty name")
	}
	kind, ok := config.ParseModuleKind(m.Kind)
	if !ok {
		return nil, fmt.Errorf("module %q: unknown kind %q (want binary, static-library, dynamic-library or header-only)", m.Name, m.Kind)
	}

	mod := &config.Module{
		Name:     m.Name,
		Kind:     kind,
		Requires: m.Requires,
	}

	for _, p := range m.Packages {
		req, err := translateRequest(m.Name, p.Name, p.Version, p.Link)
		if err != nil {
			return nil, err
		}
		mod.Externals = append(mod.Externals, req)
	}
	// Bundle references stay unexpanded requests; the expander resolves
	// them against the registry. Their override fields keep "unspecified"
	// as the empty value.
	for _, b := range m.Bundles {
		req, err := translateRequest(m.Name, b.Name, b.Version, b.Link)
		if err != nil {
			return nil, err
		}
		mod.Externals = append(mod.Externals, req)
	}
	return mod, nil
}

// translateRequest validates one external dependency request. Version and
// link are left empty when unspecified; normalization to the latest
// sentinel and the static default happens during bundle expansion.
func translateRequest(moduleName, name, rawVersion, rawLink string) (config.PackageRequirement, error) {
	if name == "" {
		return config.PackageRequirement{}, fmt.Errorf("module %q: dependency with empty name", moduleName)
	}
	if rawVersion != "" {
		if err := version.Validate(rawVersion); err != nil {
			return config.PackageRequirement{}, fmt.Errorf("module %q, dependency %q: %w", moduleName, name, err)
		}
	}
	var link config.LinkType
	if rawLink != "" {
		parsed, ok := config.ParseLinkType(rawLink)
		if !ok {
			return config.PackageRequirement{}, fmt.Errorf("module %q, dependency %q: unknown link type %q (want static, dynamic or header-only)", moduleName, name, rawLink)
		}
		link = parsed
	}
	return config.PackageRequirement{
		Name:        name,
		Version:     rawVersion,
		Link:        link,
		RequestedBy: moduleName,
	}, nil
}

// translateBundle validates and converts one bundle definition block.
func translateBundle(b *schema.Bundle) (*config.Bundle, error) {
	if b.Name == "" {
		return nil, fmt.Errorf("bundle with empty name")
	}
	bundle := &config.Bundle{Name: b.Name}
	for _, m := range b.Members {
		if m.Name == "" {
			return nil, fmt.Errorf("bundle %q: member with empty name", b.Name)
		}
		if m.Version != "" {
			if err := version.Validate(m.Version); err != nil {
				return nil, fmt.Errorf("bundle %q, member %q: %w", b.Name, m.Name, err)
			}
		}
		var link config.LinkType
		if m.Link != "" {
			parsed, ok := config.ParseLinkType(m.Link)
			if !ok {
				return nil, fmt.Errorf("bundle %q, member %q: unknown link type %q", b.Name, m.Name, m.Link)
			}
			link = parsed
		}
		bundle.Members = append(bundle.Members, config.BundleMember{
			Name:    m.Name,
			Version: m.Version,
			Link:    link,
		})
	}
	return bundle, nil
}
