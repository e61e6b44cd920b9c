// Package graph builds the dependency graph over modules and external
// packages and runs the structural checks on it: unresolved internal
// references, cycle detection on the module subgraph, and the deterministic
// topological build order. Package nodes are always leaves; they never
// depend on modules or on each other.
package graph
