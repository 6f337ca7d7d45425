package grc

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed controls.yaml
var embeddedControls []byte

// Registry holds the fixed control table. It is populated once at
// construction and never mutated; every assessment is a read-only
// projection over it.
type Registry struct {
	controls []*Control
	index    map[string]*Control
}

// NewRegistry loads and validates the embedded control table.
func NewRegistry() (*Registry, error) {
	var doc struct {
		Controls []*Control `yaml:"controls"`
	}
	if err := yaml.Unmarshal(embeddedControls, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse control table: %v", err)
	}

	registry := &Registry{
		controls: doc.Controls,
		index:    make(map[string]*Control, len(doc.Controls)),
	}

	for _, control := range registry.controls {
		if err := validateControl(control); err != nil {
			return nil, err
		}
		if _, exists := registry.index[control.ID]; exists {
			return nil, fmt.Errorf("duplicate control id %q", control.ID)
		}
		registry.index[control.ID] = control
	}

	return registry, nil
}

func validateControl(control *Control) error {
	if control.ID == "" {
		return fmt.Errorf("control id is required")
	}
	if control.Title == "" {
		return fmt.Errorf("control %q has no title", control.ID)
	}
	if !control.Family.Valid() {
		return fmt.Errorf("control %q has unknown family %q", control.ID, control.Family)
	}
	if !strings.HasPrefix(control.ID, string(control.Family)+".") {
		return fmt.Errorf("control %q does not belong to family %q", control.ID, control.Family)
	}
	if !control.Status.Valid() {
		return fmt.Errorf("control %q has invalid status %q", control.ID, control.Status)
	}
	return nil
}

// Controls returns all controls in registry order
func (r *Registry) Controls() []*Control {
	return r.controls
}

// GetControl looks up a control by exact id
func (r *Registry) GetControl(id string) (*Control, error) {
	control, ok := r.index[id]
	if !ok {
		return nil, &UnknownControlError{ID: id, ValidIDs: r.IDs()}
	}
	return control, nil
}

// IDs returns all control ids in sorted order
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.controls))
	for _, control := range r.controls {
		ids = append(ids, control.ID)
	}
	sort.Strings(ids)
	return ids
}

// FamilyControls returns the controls of one family in registry
// order. The family id itself must be valid even when no control of
// that family is present.
func (r *Registry) FamilyControls(familyID string) ([]*Control, error) {
	family := ControlFamily(familyID)
	if !family.Valid() {
		return nil, &UnknownFamilyError{ID: familyID, ValidFamilies: familyIDs()}
	}

	var matched []*Control
	for _, control := range r.controls {
		if control.Family == family {
			matched = append(matched, control)
		}
	}
	return matched, nil
}

func familyIDs() []string {
	families := Families()
	ids := make([]string, len(families))
	for i, f := range families {
		ids[i] = string(f)
	}
	return ids
}
