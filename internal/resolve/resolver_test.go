package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/graph"
	"github.com/vk/girder/internal/version"
)

func buildGraph(t *testing.T, modules ...*config.Module) *graph.Graph {
	t.Helper()
	g, err := graph.Build(context.Background(), &config.Model{Modules: modules})
	require.NoError(t, err)
	return g
}

func req(name, ver string, link config.LinkType, by string) config.PackageRequirement {
	return config.PackageRequirement{Name: name, Version: ver, Link: link, RequestedBy: by}
}

func TestResolve_WildcardYieldsToConcrete(t *testing.T) {
	t.Parallel()

	g := buildGraph(t,
		&config.Module{Name: "core", Kind: config.KindStaticLibrary, Externals: []config.PackageRequirement{
			req("lua", version.Latest, config.LinkStatic, "core"),
		}},
		&config.Module{Name: "app", Kind: config.KindBinary, Externals: []config.PackageRequirement{
			req("lua", "5.4.7", config.LinkStatic, "app"),
		}},
	)

	res, err := Resolve(context.Background(), g)
	require.NoError(t, err)

	lua, ok := res.Package("lua")
	require.True(t, ok)
	assert.Equal(t, "5.4.7", lua.Version)
	assert.Equal(t, config.LinkStatic, lua.Link)
	assert.Empty(t, lua.RequestedBy, "a resolved entry belongs to no single module")
}

func TestResolve_AllWildcardStaysLatest(t *testing.T) {
	t.Parallel()

	g := buildGraph(t,
		&config.Module{Name: "core", Kind: config.KindStaticLibrary, Externals: []config.PackageRequirement{
			req("zlib", version.Latest, config.LinkStatic, "core"),
		}},
		&config.Module{Name: "app", Kind: config.KindBinary, Externals: []config.PackageRequirement{
			req("zlib", version.Latest, config.LinkStatic, "app"),
		}},
	)

	res, err := Resolve(context.Background(), g)
	require.NoError(t, err)

	zlib, ok := res.Package("zlib")
	require.True(t, ok)
	assert.Equal(t, version.Latest, zlib.Version)
}

func TestResolve_VersionConflict(t *testing.T) {
	t.Parallel()

	g := buildGraph(t,
		&config.Module{Name: "legacy", Kind: config.KindStaticLibrary, Externals: []config.PackageRequirement{
			req("lua", "5.1.0", config.LinkStatic, "legacy"),
		}},
		&config.Module{Name: "app", Kind: config.KindBinary, Externals: []config.PackageRequirement{
			req("lua", "5.4.7", config.LinkStatic, "app"),
		}},
	)

	_, err := Resolve(context.Background(), g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPackageConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "lua", conflict.Package)
	assert.Equal(t, []string{"5.4.7", "5.1.0"}, conflict.Versions, "versions report newest-first")
	require.Len(t, conflict.Requirements, 2)
	assert.Equal(t, "legacy", conflict.Requirements[0].RequestedBy)
	assert.Contains(t, conflict.Error(), `conflicting requirements for package "lua"`)
	assert.Contains(t, conflict.Error(), "versions 5.4.7 vs 5.1.0")
}

func TestResolve_LinkConflict(t *testing.T) {
	t.Parallel()

	g := buildGraph(t,
		&config.Module{Name: "core", Kind: config.KindStaticLibrary, Externals: []config.PackageRequirement{
			req("ssl", "3.0.0", config.LinkStatic, "core"),
		}},
		&config.Module{Name: "app", Kind: config.KindBinary, Externals: []config.PackageRequirement{
			req("ssl", "3.0.0", config.LinkDynamic, "app"),
		}},
	)

	_, err := Resolve(context.Background(), g)
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "ssl", conflict.Package)
	assert.Equal(t, []config.LinkType{config.LinkStatic, config.LinkDynamic}, conflict.Links)
	assert.Contains(t, conflict.Error(), "link types static vs dynamic")
}

func TestResolve_ConflictEvenWithWildcardPresent(t *testing.T) {
	t.Parallel()

	// A wildcard in the mix does not paper over two distinct concrete versions.
	g := buildGraph(t,
		&config.Module{Name: "a", Kind: config.KindStaticLibrary, Externals: []config.PackageRequirement{
			req("lua", "5.1.0", config.LinkStatic, "a"),
		}},
		&config.Module{Name: "b", Kind: config.KindStaticLibrary, Externals: []config.PackageRequirement{
			req("lua", version.Latest, config.LinkStatic, "b"),
		}},
		&config.Module{Name: "c", Kind: config.KindBinary, Externals: []config.PackageRequirement{
			req("lua", "5.4.7", config.LinkStatic, "c"),
		}},
	)

	_, err := Resolve(context.Background(), g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPackageConflict)
}

func TestResolve_FirstConflictLexicographically(t *testing.T) {
	t.Parallel()

	// Two conflicting packages; the report names the lexicographically
	// smaller one regardless of declaration order.
	g := buildGraph(t,
		&config.Module{Name: "m1", Kind: config.KindStaticLibrary, Externals: []config.PackageRequirement{
			req("zlib", "1.2.0", config.LinkStatic, "m1"),
			req("curl", "8.0.0", config.LinkStatic, "m1"),
		}},
		&config.Module{Name: "m2", Kind: config.KindBinary, Externals: []config.PackageRequirement{
			req("zlib", "1.3.1", config.LinkStatic, "m2"),
			req("curl", "8.5.0", config.LinkStatic, "m2"),
		}},
	)

	_, err := Resolve(context.Background(), g)
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "curl", conflict.Package)
}

func TestResolution_Names(t *testing.T) {
	t.Parallel()

	g := buildGraph(t,
		&config.Module{Name: "app", Kind: config.KindBinary, Externals: []config.PackageRequirement{
			req("zlib", "1.3.1", config.LinkStatic, "app"),
			req("fmt", "10.2.1", config.LinkHeaderOnly, "app"),
		}},
	)

	res, err := Resolve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, []string{"fmt", "zlib"}, res.Names())
}
