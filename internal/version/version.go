// Package version handles external package version strings. A requirement
// either pins a concrete version ("5.4.7") or carries the Latest sentinel,
// meaning "whatever the installer considers current". The sentinel is an
// explicit value so every pipeline stage handles it uniformly instead of
// special-casing an empty string.
package version

import (
	"fmt"

	mm "github.com/Masterminds/semver/v3"
)

// Latest is the wildcard sentinel for an unconstrained version requirement.
const Latest = "latest"

// IsLatest reports whether v is the wildcard sentinel.
func IsLatest(v string) bool {
	return v == Latest
}

// Validate checks that v is either the Latest sentinel or a parseable
// (loose) semantic version. Native package registries are not strictly
// semver, so partial versions like "5.4" are accepted.
func Validate(v string) error {
	if v == Latest {
		return nil
	}
	if _, err := mm.NewVersion(v); err != nil {
		return fmt.Errorf("version: invalid version %q: %w", v, err)
	}
	return nil
}

// Compare orders two version strings for deterministic reporting:
// -1 if a < b, 0 if equal, 1 if a > b. The Latest sentinel sorts above any
// concrete version; strings that do not parse fall back to lexicographic
// comparison. Compare never decides compatibility; two requirements are
// compatible only when their version strings are identical or one is Latest.
func Compare(a, b string) int {
	if a == b {
		return 0
	}
	if IsLatest(a) {
		return 1
	}
	if IsLatest(b) {
		return -1
	}

	av, aerr := mm.NewVersion(a)
	bv, berr := mm.NewVersion(b)
	if aerr != nil || berr != nil {
		if a < b {
			return -1
		}
		return 1
	}
	return av.Compare(bv)
}
