package graph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph validation failures. Match with errors.Is; use
// errors.As to reach the structured detail.
var (
	// ErrUnresolvedReference indicates an internal dependency names a
	// module that does not exist in the build description.
	ErrUnresolvedReference = errors.New("unresolved module reference")

	// ErrCyclicDependency indicates the module subgraph contains a cycle.
	ErrCyclicDependency = errors.New("cyclic dependency")
)

// UnresolvedReferenceError reports which module referenced which missing name.
type UnresolvedReferenceError struct {
	Module    string
	Reference string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("module %q requires %q, which is not declared", e.Module, e.Reference)
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return ErrUnresolvedReference
}

// CycleError carries the detected cycle as an ordered module-name sequence
// that starts and ends at the same module: the lexicographically smallest
// one on the cycle, so identical inputs report identical cycles.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error {
	return ErrCyclicDependency
}
