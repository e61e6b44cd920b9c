package graph

import (
	"context"

	"github.com/vk/girder/internal/ctxlog"
)

// DetectCycles verifies the module subgraph is acyclic using depth-first
// search with the classic three-color marking: unvisited, in-progress, and
// done. Hitting an in-progress node again means the current path closed a
// cycle; the full cycle is reported and resolution halts.
//
// Roots and adjacency are walked in lexicographic order so the same input
// always reports the same cycle.
func (g *Graph) DetectCycles(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	inProgress := make(map[string]bool)
	done := make(map[string]bool)
	var stack []string

	var visit func(n *ModuleNode) *CycleError
	visit = func(n *ModuleNode) *CycleError {
		name := n.Module.Name
		inProgress[name] = true
		stack = append(stack, name)

		for _, dep := range SortedDeps(n) {
			depName := dep.Module.Name
			if inProgress[depName] {
				return newCycleError(stack, depName)
			}
			if !done[depName] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		delete(inProgress, name)
		done[name] = true
		return nil
	}

	for _, name := range g.ModuleNames() {
		if done[name] {
			continue
		}
		if err := visit(g.modules[name]); err != nil {
			return err
		}
	}

	logger.Debug("DetectCycles: module subgraph is acyclic.")
	return nil
}

// newCycleError extracts the closed cycle from the DFS stack. The stack
// holds the current path; everything from the repeated node onward is on
// the cycle. The path is then rotated so it starts at the lexicographically
// smallest member and closed by repeating that member at the end.
func newCycleError(stack []string, repeated string) *CycleError {
	start := 0
	for i, name := range stack {
		if name == repeated {
			start = i
			break
		}
	}
	cycle := append([]string(nil), stack[start:]...)

	smallest := 0
	for i, name := range cycle {
		if name < cycle[smallest] {
			smallest = i
		}
	}
	rotated := make([]string, 0, len(cycle)+1)
	rotated = append(rotated, cycle[smallest:]...)
	rotated = append(rotated, cycle[:smallest]...)
	rotated = append(rotated, rotated[0])

	return &CycleError{Path: rotated}
}
