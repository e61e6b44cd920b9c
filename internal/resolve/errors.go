package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/girder/internal/config"
	"github.com/vk/girder/internal/graph"
)

// ErrPackageConflict marks incompatible requirements for one package.
// Match with errors.Is.
var ErrPackageConflict = errors.New("package version conflict")

// ConflictError is the conflict report: the package, every requirement made
// for it in module declaration order, and the distinct disagreeing values.
// Versions are ordered newest-first; links in first-seen order.
type ConflictError struct {
	Package      string
	Requirements []config.PackageRequirement
	Versions     []string
	Links        []config.LinkType
}

func newConflictError(node *graph.PackageNode, versions []string, links []config.LinkType) *ConflictError {
	return &ConflictError{
		Package:      node.Name,
		Requirements: append([]config.PackageRequirement(nil), node.Requirements...),
		Versions:     versions,
		Links:        links,
	}
}

func (e *ConflictError) Error() string {
	var parts []string
	if len(e.Versions) > 1 {
		parts = append(parts, fmt.Sprintf("versions %s", strings.Join(e.Versions, " vs ")))
	}
	if len(e.Links) > 1 {
		linkNames := make([]string, len(e.Links))
		for i, l := range e.Links {
			linkNames[i] = string(l)
		}
		parts = append(parts, fmt.Sprintf("link types %s", strings.Join(linkNames, " vs ")))
	}
	requesters := make([]string, 0, len(e.Requirements))
	for _, req := range e.Requirements {
		requesters = append(requesters, fmt.Sprintf("%s (%s, %s)", req.RequestedBy, req.Version, req.Link))
	}
	return fmt.Sprintf("conflicting requirements for package %q: %s; requested by %s",
		e.Package, strings.Join(parts, ", "), strings.Join(requesters, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrPackageConflict
}
