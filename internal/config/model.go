package config

import (
	"errors"
	"fmt"
)

// ErrComponentNotFound is returned by Model.Lookup for unknown names.
var ErrComponentNotFound = errors.New("component not found")

// Model is the unified, format-agnostic representation of every component
// found in the loaded inputs.
type Model struct {
	Components []*Component
}

// Component is a single named build target and the names it depends on.
type Component struct {
	// Name identifies the component. It becomes the graph node name.
	Name string
	// DependsOn lists dependency names in declaration order.
	DependsOn []string
	// Attributes holds free-form metadata from the source format.
	Attributes map[string]string
	// Source is the file the component was read from.
	Source string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Add appends components to the model.
func (m *Model) Add(components ...*Component) {
	m.Components = append(m.Components, components...)
}

// Append adds every component of other after the model's own components.
func (m *Model) Append(other *Model) {
	if other == nil {
		return
	}
	m.Components = append(m.Components, other.Components...)
}

// Len returns the number of components.
func (m *Model) Len() int {
	return len(m.Components)
}

// Lookup returns the first component named name.
func (m *Model) Lookup(name string) (*Component, error) {
	for _, c := range m.Components {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrComponentNotFound, name)
}

// Names returns component names in model order.
func (m *Model) Names() []string {
	names := make([]string, 0, len(m.Components))
	for _, c := range m.Components {
		names = append(names, c.Name)
	}
	return names
}

// DependencyMap flattens the model into name -> dependency names. When a
// name appears more than once the first component wins.
func (m *Model) DependencyMap() map[string][]string {
	deps := make(map[string][]string, len(m.Components))
	for _, c := range m.Components {
		if _, ok := deps[c.Name]; ok {
			continue
		}
		deps[c.Name] = append([]string(nil), c.DependsOn...)
	}
	return deps
}
