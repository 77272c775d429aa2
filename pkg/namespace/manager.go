// Package namespace decides whether an alias may be resolved from the
// namespace of a requested class.
//
// A namespace specifier is one of:
//
//	*           any namespace
//	Ns\Path\*   any class under Ns\Path (a path prefix)
//	Ns\Path     only Ns\Path\<alias> (an exact name)
//
// Rules registered under the Wildcard alias apply to every alias.
package namespace

import (
	"sort"

	"github.com/stackb/statical/pkg/input"
)

// Manager stores a RuleSet per alias.
type Manager struct {
	rules map[string]*RuleSet
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{
		rules: make(map[string]*RuleSet),
	}
}

type classified struct {
	group Group
	value string
}

// Add classifies each spec and merges it into the rules of the alias.  All
// specs are validated before any is merged.
func (m *Manager) Add(alias string, specs ...string) error {
	alias, err := input.Check(alias)
	if err != nil {
		return err
	}
	items, err := classifyAll(specs)
	if err != nil {
		return err
	}
	rs := m.getOrCreate(alias)
	for _, item := range items {
		rs.Put(item.group, item.value)
	}
	return nil
}

// Validate reports the first spec that cannot be classified.
func Validate(specs ...string) error {
	_, err := classifyAll(specs)
	return err
}

func classifyAll(specs []string) ([]classified, error) {
	items := make([]classified, 0, len(specs))
	for _, spec := range specs {
		group, value, err := Classify(spec)
		if err != nil {
			return nil, err
		}
		items = append(items, classified{group, value})
	}
	return items, nil
}

// Rules returns the rule set of the alias.  If not known `(nil, false)` is
// returned.
func (m *Manager) Rules(alias string) (*RuleSet, bool) {
	rs, ok := m.rules[alias]
	return rs, ok
}

// Aliases returns the sorted list of aliases having rules.
func (m *Manager) Aliases() []string {
	aliases := make([]string, 0, len(m.rules))
	for alias := range m.rules {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Match reports whether the class may resolve to the alias.  The rules of the
// Wildcard alias are tried first, then those of the alias itself.
func (m *Manager) Match(alias, class string) bool {
	for _, key := range []string{Wildcard, alias} {
		if rs, ok := m.rules[key]; ok && rs.Match(class, alias) {
			return true
		}
	}
	return false
}

// Resolve returns the alias a class resolves to by namespace.  The base name
// of the class must be a known alias, as reported by the known func.
func (m *Manager) Resolve(class string, known func(alias string) bool) (string, bool) {
	alias := BaseName(class)
	if !known(alias) {
		return "", false
	}
	if m.Match(alias, class) {
		return alias, true
	}
	return "", false
}

func (m *Manager) getOrCreate(alias string) *RuleSet {
	rs, ok := m.rules[alias]
	if !ok {
		rs = NewRuleSet()
		m.rules[alias] = rs
	}
	return rs
}
