package templates

import (
	"fmt"
	"strings"
)

// UnknownTemplateError is returned when a template id has no match in
// the loaded template set.
type UnknownTemplateError struct {
	ID       string
	ValidIDs []string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q (valid templates: %s)", e.ID, strings.Join(e.ValidIDs, ", "))
}

// UnboundPlaceholderError indicates a placeholder in a query skeleton
// with no bound value. At load time it marks a defective template
// definition; at resolve time it should never occur for a template
// that passed the load-time self-check.
type UnboundPlaceholderError struct {
	TemplateID   string
	Placeholders []string
}

func (e *UnboundPlaceholderError) Error() string {
	return fmt.Sprintf("template %q has unbound placeholders: %s", e.TemplateID, strings.Join(e.Placeholders, ", "))
}
