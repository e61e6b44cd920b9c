// Package bundle implements the bundle registry and the expansion of bundle
// references into their member package requirements. The registry is built
// once at startup and is read-only afterwards, so it is safe to share
// across concurrent resolutions.
package bundle

import (
	"fmt"

	"github.com/vk/girder/internal/config"
)

// Registry holds every known bundle, keyed by name.
type Registry struct {
	bundles map[string]*config.Bundle
}

// NewRegistry builds a registry from loaded bundle definitions. Duplicate
// names are rejected by the loader, so the last writer never silently wins.
func NewRegistry(bundles []*config.Bundle) *Registry {
	r := &Registry{bundles: make(map[string]*config.Bundle, len(bundles))}
	for _, b := range bundles {
		r.bundles[b.Name] = b
	}
	return r
}

// Lookup returns the bundle with the given name, if registered.
func (r *Registry) Lookup(name string) (*config.Bundle, bool) {
	b, ok := r.bundles[name]
	return b, ok
}

// Len returns the number of registered bundles.
func (r *Registry) Len() int {
	return len(r.bundles)
}

func (r *Registry) String() string {
	return fmt.Sprintf("bundle.Registry(%d bundles)", len(r.bundles))
}
