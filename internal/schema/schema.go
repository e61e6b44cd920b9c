// Package schema holds the HCL-shaped structs the loader decodes into.
// These mirror the blocks a user writes; translation into the typed config
// model (and all validation) happens in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// Project represents the optional top-level `project` block.
type Project struct {
	Name     string `hcl:"name,optional"`
	Language string `hcl:"language,optional"`
	Standard string `hcl:"standard,optional"`
	Compiler string `hcl:"compiler,optional"`
	Triplet  string `hcl:"triplet,optional"`
}

// Package represents a `package` block inside a module: one external
// dependency request. Version and link are optional; an omitted version is
// the "latest" wildcard and an omitted link defaults to static.
type Package struct {
	Name    string `hcl:"name,label"`
	Version string `hcl:"version,optional"`
	Link    string `hcl:"link,optional"`
}

// BundleRef represents a `bundle` block inside a module: a reference to a
// registered bundle, optionally overriding version/link for all members.
type BundleRef struct {
	Name    string `hcl:"name,label"`
	Version string `hcl:"version,optional"`
	Link    string `hcl:"link,optional"`
}

// Module represents a `module` block: one buildable unit.
type Module struct {
	Name     string       `hcl:"name,label"`
	Kind     string       `hcl:"kind"`
	Requires []string     `hcl:"requires,optional"`
	Packages []*Package   `hcl:"package,block"`
	Bundles  []*BundleRef `hcl:"bundle,block"`
}

// BundleMember represents a `member` block inside a bundle definition.
type BundleMember struct {
	Name    string `hcl:"name,label"`
	Version string `hcl:"version,optional"`
	Link    string `hcl:"link,optional"`
}

// Bundle represents a top-level `bundle` definition block from the bundle
// registry files.
type Bundle struct {
	Name    string          `hcl:"name,label"`
	Members []*BundleMember `hcl:"member,block"`
}

// FileRoot decodes any valid top-level block from any file, so build
// descriptions and bundle registries can be split across files freely.
type FileRoot struct {
	Project *Project  `hcl:"project,block"`
	Modules []*Module `hcl:"module,block"`
	Bundles []*Bundle `hcl:"bundle,block"`
	Remain  hcl.Body  `hcl:",remain"`
}
