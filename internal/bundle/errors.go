package bundle

import (
	"errors"
	"fmt"
)

// ErrUnknownMember marks a bundle that expands to a name with no concrete
// package behind it. Match with errors.Is.
var ErrUnknownMember = errors.New("unknown bundle member")

// UnknownMemberError reports which member of which bundle was unresolvable.
// It indicates a corrupt registry, not a mistake in the build description.
type UnknownMemberError struct {
	Bundle string
	Member string
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("bundle %q: member %q does not resolve to a package", e.Bundle, e.Member)
}

func (e *UnknownMemberError) Unwrap() error {
	return ErrUnknownMember
}
