// Package config defines the typed, format-agnostic model of a build
// description: modules, their kinds, their internal and external
// dependencies, and the bundle registry entries. Loaders validate raw input
// at the boundary and produce this model; every later pipeline stage
// operates on these types only and never mutates them.
package config
