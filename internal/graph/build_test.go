package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/version"
)

func mod(name string, kind config.ModuleKind, requires []string, externals ...config.PackageRequirement) *config.Module {
	return &config.Module{
		Name:      name,
		Kind:      kind,
		Requires:  requires,
		Externals: externals,
	}
}

func req(name, ver string, link config.LinkType, by string) config.PackageRequirement {
	return config.PackageRequirement{Name: name, Version: ver, Link: link, RequestedBy: by}
}

func TestBuild_LinksModulesAndPackages(t *testing.T) {
	t.Parallel()

	model := &config.Model{
		Modules: []*config.Module{
			mod("core", config.KindStaticLibrary, nil,
				req("lua", "5.4.7", config.LinkStatic, "core")),
			mod("app", config.KindBinary, []string{"core"},
				req("lua", version.Latest, config.LinkStatic, "app"),
				req("fmt", "10.2.1", config.LinkHeaderOnly, "app")),
		},
	}

	g, err := Build(context.Background(), model)
	require.NoError(t, err)

	assert.Equal(t, 2, g.ModuleCount())
	assert.Equal(t, []string{"app", "core"}, g.ModuleNames())
	assert.Equal(t, []string{"fmt", "lua"}, g.PackageNames())

	app, ok := g.Module("app")
	require.True(t, ok)
	require.Contains(t, app.Deps, "core")

	core, ok := g.Module("core")
	require.True(t, ok)
	require.Contains(t, core.Dependents, "app")
	assert.Empty(t, core.Deps)

	lua, ok := g.Package("lua")
	require.True(t, ok)
	// Requirements accumulate in module declaration order.
	require.Len(t, lua.Requirements, 2)
	assert.Equal(t, "core", lua.Requirements[0].RequestedBy)
	assert.Equal(t, "app", lua.Requirements[1].RequestedBy)
}

func TestBuild_UnresolvedReference(t *testing.T) {
	t.Parallel()

	model := &config.Model{
		Modules: []*config.Module{
			mod("app", config.KindBinary, []string{"missing"}),
		},
	}

	_, err := Build(context.Background(), model)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedReference)

	var unresolved *UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "app", unresolved.Module)
	assert.Equal(t, "missing", unresolved.Reference)
}

func TestBuild_SelfReferenceLinksEdge(t *testing.T) {
	t.Parallel()

	// A self-edge builds fine; it is the cycle detector's job to reject it.
	model := &config.Model{
		Modules: []*config.Module{
			mod("loop", config.KindStaticLibrary, []string{"loop"}),
		},
	}

	g, err := Build(context.Background(), model)
	require.NoError(t, err)

	n, ok := g.Module("loop")
	require.True(t, ok)
	assert.Contains(t, n.Deps, "loop")
}
