package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModuleKind(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"binary", "static-library", "dynamic-library", "header-only"} {
		kind, ok := ParseModuleKind(valid)
		assert.True(t, ok, "kind %q should parse", valid)
		assert.Equal(t, ModuleKind(valid), kind)
	}

	_, ok := ParseModuleKind("shared-library")
	assert.False(t, ok)
	_, ok = ParseModuleKind("")
	assert.False(t, ok)
}

func TestParseLinkType(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"static", "dynamic", "header-only"} {
		link, ok := ParseLinkType(valid)
		assert.True(t, ok, "link %q should parse", valid)
		assert.Equal(t, LinkType(valid), link)
	}

	_, ok := ParseLinkType("shared")
	assert.False(t, ok)
}

func TestModuleByName(t *testing.T) {
	t.Parallel()

	model := &Model{
		Modules: []*Module{
			{Name: "core", Kind: KindStaticLibrary},
			{Name: "app", Kind: KindBinary},
		},
	}

	mod, ok := model.ModuleByName("core")
	require.True(t, ok)
	assert.Equal(t, KindStaticLibrary, mod.Kind)

	_, ok = model.ModuleByName("missing")
	assert.False(t, ok)
}

func TestDuplicateModuleNameError(t *testing.T) {
	t.Parallel()

	err := &DuplicateModuleNameError{Name: "core"}
	assert.ErrorIs(t, err, ErrDuplicateModuleName)
	assert.Contains(t, err.Error(), "core")

	var dup *DuplicateModuleNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "core", dup.Name)
}
