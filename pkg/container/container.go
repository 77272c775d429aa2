// Package container is a minimal id-keyed service container.  Values set as
// a func() any are built on first Get and the result replaces them.
package container

import "sort"

// Map is a service container keyed by id.
type Map struct {
	items map[string]any
}

// New constructs an empty Map.
func New() *Map {
	return &Map{items: make(map[string]any)}
}

// Set registers a value or a builder under the id.
func (m *Map) Set(id string, value any) *Map {
	m.items[id] = value
	return m
}

// Has reports whether the id is registered.
func (m *Map) Has(id string) bool {
	_, ok := m.items[id]
	return ok
}

// Get returns the value registered under the id, or nil.
func (m *Map) Get(id string) any {
	value, ok := m.items[id]
	if !ok {
		return nil
	}
	if build, ok := value.(func() any); ok {
		value = build()
		m.items[id] = value
	}
	return value
}

// IDs returns the sorted registered ids.
func (m *Map) IDs() []string {
	ids := make([]string, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
