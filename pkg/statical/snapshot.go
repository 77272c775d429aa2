package statical

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Snapshot returns the registration state: the aliases, their namespace
// rules, the proxy targets and the hook state.
func (m *Manager) Snapshot() (*structpb.Struct, error) {
	aliases := make(map[string]any)
	for name, original := range m.aliases.Aliases() {
		aliases[name] = original
	}

	namespaces := make(map[string]any)
	for _, name := range m.aliases.Namespaces().Aliases() {
		rs := m.aliases.Rules(name)
		if rs.IsEmpty() {
			continue
		}
		namespaces[name] = rs.Map()
	}

	targets := make(map[string]any)
	for _, name := range m.registry.Names() {
		t, _ := m.registry.Get(name)
		target := map[string]any{"kind": t.Kind().String()}
		if id := t.ID(); id != "" {
			target["id"] = id
		}
		targets[name] = target
	}

	registered, last := m.Registered()

	return structpb.NewStruct(map[string]any{
		"aliases":    aliases,
		"namespaces": namespaces,
		"targets":    targets,
		"hook": map[string]any{
			"registered":  registered,
			"last":        last,
			"namespacing": m.Namespacing(),
		},
		"container": m.container != nil,
	})
}
