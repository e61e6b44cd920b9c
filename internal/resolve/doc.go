// Package resolve decides, per external package, the single version and
// link type the whole build will use. Installed packages share one location
// per platform triplet, so a plan that needs two versions of one package,
// or the same package linked two different ways, cannot be materialized
// and is rejected as a whole.
package resolve
