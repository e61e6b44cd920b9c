package plan

import "context"

// Generator is the external build-file generator collaborator. It consumes
// the plan in topological order and emits tool-specific target definitions
// (CMake, Ninja, ...). Generation is out of scope for the resolver core;
// the JSON writer is the default sink the CLI ships with.
type Generator interface {
	Generate(ctx context.Context, p *BuildPlan) error
}

// Installer is the external package installer collaborator. It receives the
// deduplicated, conflict-free install manifest and is expected to serialize
// its own invocations; the resolver only guarantees a single plan never
// needs two variants of one package.
type Installer interface {
	Install(ctx context.Context, entries []InstallEntry) error
}
