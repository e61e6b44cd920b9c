// Package hcl implements the config.Loader interface for HCL build
// descriptions. It discovers .hcl files, parses them, decodes the raw
// blocks into schema structs and translates those into the validated,
// format-agnostic config model. All input validation lives here; the
// pipeline downstream trusts the model.
package hcl
