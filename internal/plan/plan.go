// Package plan materializes the resolved build plan: the topologically
// ordered target list, each target's link order and external package set,
// and the deduplicated install manifest. It is the hand-off surface for the
// external build-file generator and package installer; no validation
// happens here, since an inconsistency at this stage is a defect in an
// earlier one.
package plan

import (
	"github.com/vk/girder/internal/config"
)

// Target is the per-module build descriptor the generator consumes.
type Target struct {
	Name string            `json:"name"`
	Kind config.ModuleKind `json:"kind"`
	// LinkOrder is the sequence in which this target and its internal
	// dependencies must be presented to the linker, dependencies first.
	LinkOrder []string `json:"linkOrder"`
	// ExternalPackages is the resolved external dependency set this target
	// needs at build time, sorted by package name.
	ExternalPackages []config.PackageRequirement `json:"externalPackages"`
}

// InstallEntry is one line of the installer manifest: a package to install
// once per platform triplet before any target is built.
type InstallEntry struct {
	Package string          `json:"package"`
	Version string          `json:"version"`
	Link    config.LinkType `json:"link"`
	Triplet string          `json:"triplet,omitempty"`
}

// BuildPlan is the complete output of one resolution: everything downstream
// generators and installers need, in a stable order.
type BuildPlan struct {
	Project config.Project `json:"project"`
	// Order is the topological build order over targets.
	Order   []string           `json:"order"`
	Targets map[string]*Target `json:"targets"`
	// Install is the conflict-free, deduplicated package set for the whole
	// plan, sorted by package name.
	Install []InstallEntry `json:"install"`
}

// Target returns the descriptor for the named module.
func (p *BuildPlan) Target(name string) (*Target, bool) {
	t, ok := p.Targets[name]
	return t, ok
}
