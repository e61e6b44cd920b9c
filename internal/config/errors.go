package config

import (
	"errors"
	"fmt"
)

// ErrDuplicateModuleName marks a build description that declares two
// modules with the same name. Match with errors.Is.
var ErrDuplicateModuleName = errors.New("duplicate module name")

// DuplicateModuleNameError reports which name was declared twice.
type DuplicateModuleNameError struct {
	Name string
}

func (e *DuplicateModuleNameError) Error() string {
	return fmt.Sprintf("module %q is declared more than once", e.Name)
}

func (e *DuplicateModuleNameError) Unwrap() error {
	return ErrDuplicateModuleName
}
