// Package app wires the application together: logger construction, loading
// the build description and bundle registry, and running the resolution
// pipeline end to end. It owns the pipeline ordering guarantee: the first
// error in stage order is the one the user sees, never an aggregate.
package app
