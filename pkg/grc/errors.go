package grc

import (
	"fmt"
	"strings"
)

// UnknownControlError is returned when a control id has no match in
// the registry.
type UnknownControlError struct {
	ID       string
	ValidIDs []string
}

func (e *UnknownControlError) Error() string {
	return fmt.Sprintf("unknown control %q (valid controls: %s)", e.ID, strings.Join(e.ValidIDs, ", "))
}

// UnknownFamilyError is returned when a family id is not one of the
// NIST 800-171 families.
type UnknownFamilyError struct {
	ID            string
	ValidFamilies []string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("unknown control family %q (valid families: %s)", e.ID, strings.Join(e.ValidFamilies, ", "))
}
