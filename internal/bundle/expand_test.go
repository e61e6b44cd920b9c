package bundle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/version"
)

func testRegistry() *Registry {
	return NewRegistry([]*config.Bundle{
		{
			Name: "scripting",
			Members: []config.BundleMember{
				{Name: "lua", Version: "5.4.7"},
				{Name: "sol2", Version: "3.5.0", Link: config.LinkHeaderOnly},
			},
		},
		{
			Name: "broken",
			Members: []config.BundleMember{
				{Name: "scripting"}, // a bundle naming another bundle
			},
		},
	})
}

func TestExpand_PassThrough(t *testing.T) {
	t.Parallel()
	reg := testRegistry()

	reqs, err := reg.Expand(config.PackageRequirement{
		Name:        "zlib",
		RequestedBy: "core",
	})
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	// Non-bundle names pass through normalized.
	assert.Equal(t, "zlib", reqs[0].Name)
	assert.Equal(t, version.Latest, reqs[0].Version)
	assert.Equal(t, config.LinkStatic, reqs[0].Link)
	assert.Equal(t, "core", reqs[0].RequestedBy)
}

func TestExpand_BundleDefaults(t *testing.T) {
	t.Parallel()
	reg := testRegistry()

	reqs, err := reg.Expand(config.PackageRequirement{
		Name:        "scripting",
		RequestedBy: "engine",
	})
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, "lua", reqs[0].Name)
	assert.Equal(t, "5.4.7", reqs[0].Version)
	assert.Equal(t, config.LinkStatic, reqs[0].Link)
	assert.Equal(t, "engine", reqs[0].RequestedBy)

	assert.Equal(t, "sol2", reqs[1].Name)
	assert.Equal(t, "3.5.0", reqs[1].Version)
	assert.Equal(t, config.LinkHeaderOnly, reqs[1].Link)
	assert.Equal(t, "engine", reqs[1].RequestedBy)
}

func TestExpand_CallerOverrides(t *testing.T) {
	t.Parallel()
	reg := testRegistry()

	reqs, err := reg.Expand(config.PackageRequirement{
		Name:        "scripting",
		Version:     "9.9.9",
		Link:        config.LinkDynamic,
		RequestedBy: "engine",
	})
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	for _, req := range reqs {
		assert.Equal(t, "9.9.9", req.Version, "override should apply to %s", req.Name)
		assert.Equal(t, config.LinkDynamic, req.Link, "override should apply to %s", req.Name)
	}
}

func TestExpand_IdempotentAndOrderPreserving(t *testing.T) {
	t.Parallel()
	reg := testRegistry()

	req := config.PackageRequirement{Name: "scripting", RequestedBy: "engine"}
	first, err := reg.Expand(req)
	require.NoError(t, err)
	second, err := reg.Expand(req)
	require.NoError(t, err)

	assert.Equal(t, first, second, "expanding twice with the same overrides must yield identical sequences")
	assert.Equal(t, "lua", first[0].Name, "member order must match declaration order")
	assert.Equal(t, "sol2", first[1].Name)
}

func TestExpand_UnknownMember(t *testing.T) {
	t.Parallel()
	reg := testRegistry()

	_, err := reg.Expand(config.PackageRequirement{Name: "broken", RequestedBy: "engine"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMember)

	var unknown *UnknownMemberError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "broken", unknown.Bundle)
	assert.Equal(t, "scripting", unknown.Member)
}

func TestExpandModel(t *testing.T) {
	t.Parallel()
	reg := testRegistry()

	model := &config.Model{
		Modules: []*config.Module{
			{
				Name: "engine",
				Kind: config.KindStaticLibrary,
				Externals: []config.PackageRequirement{
					{Name: "scripting", RequestedBy: "engine"},
					{Name: "zlib", Version: "1.3.1", RequestedBy: "engine"},
				},
			},
		},
	}

	expanded, err := ExpandModel(context.Background(), reg, model)
	require.NoError(t, err)

	require.Len(t, expanded.Modules, 1)
	names := make([]string, 0)
	for _, req := range expanded.Modules[0].Externals {
		names = append(names, req.Name)
	}
	assert.Equal(t, []string{"lua", "sol2", "zlib"}, names)

	// The input model must stay untouched.
	require.Len(t, model.Modules[0].Externals, 2)
	assert.Equal(t, "scripting", model.Modules[0].Externals[0].Name)
}
