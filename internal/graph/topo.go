package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/girder/internal/ctxlog"
)

// TopoOrder produces the build order: a total order over modules in which
// every module appears after all of its internal dependencies. It runs
// Kahn's algorithm, repeatedly removing the zero-in-degree module that is
// lexicographically smallest, so the order is stable across runs for the
// same input. External packages are not ordered; they attach to whichever
// modules need them.
//
// The graph must already have passed DetectCycles. A cycle reaching this
// point is a defect in the pipeline, not a user error, so TopoOrder panics
// rather than returning an error.
func (g *Graph) TopoOrder(ctx context.Context) []string {
	logger := ctxlog.FromContext(ctx)

	inDegree := make(map[string]int, len(g.modules))
	for name, node := range g.modules {
		inDegree[name] = len(node.Deps)
	}

	var ready []string
	for name, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(g.modules))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		var unlocked []string
		for depName := range g.modules[name].Dependents {
			inDegree[depName]--
			if inDegree[depName] == 0 {
				unlocked = append(unlocked, depName)
			}
		}
		// Keep the ready set sorted so ties always break lexicographically.
		sort.Strings(unlocked)
		ready = merge(ready, unlocked)
	}

	if len(order) != len(g.modules) {
		panic(fmt.Sprintf("graph: TopoOrder called on cyclic graph (%d of %d modules ordered)", len(order), len(g.modules)))
	}

	logger.Debug("TopoOrder: build order computed.", "modules", len(order))
	return order
}

// merge combines two sorted string slices into one sorted slice.
func merge(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
