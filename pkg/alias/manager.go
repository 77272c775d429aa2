// Package alias registers lazily bound class aliases and the resolution hook
// that binds them.
package alias

import (
	"github.com/rs/zerolog"

	"github.com/stackb/statical/pkg/host"
	"github.com/stackb/statical/pkg/input"
	"github.com/stackb/statical/pkg/namespace"
)

// Manager maps aliases to their original names and is itself the resolution
// hook registered on the host stack.
type Manager struct {
	logger     zerolog.Logger
	stack      host.HookStack
	symbols    host.SymbolTable
	aliases    map[string]string
	namespacer *namespace.Manager
	// useNamespacing enables matching namespaced requests against the
	// namespace rules.
	useNamespacing bool
}

// NewManager constructs a new Manager.  The hook is not registered until
// Enable is called.
func NewManager(logger zerolog.Logger, stack host.HookStack, symbols host.SymbolTable) *Manager {
	return &Manager{
		logger:     logger,
		stack:      stack,
		symbols:    symbols,
		aliases:    make(map[string]string),
		namespacer: namespace.NewManager(),
	}
}

// Add maps the alias to the original name, replacing any previous mapping.
func (m *Manager) Add(original, alias string) error {
	alias, err := input.CheckAlias(alias)
	if err != nil {
		return err
	}
	m.aliases[alias] = original
	return nil
}

// AddNamespace adds namespace rules for the alias.
func (m *Manager) AddNamespace(alias string, specs ...string) error {
	return m.namespacer.Add(alias, specs...)
}

// Original returns the name the alias maps to.
func (m *Manager) Original(alias string) (string, bool) {
	original, ok := m.aliases[alias]
	return original, ok
}

// Aliases returns a copy of the alias map.
func (m *Manager) Aliases() map[string]string {
	aliases := make(map[string]string, len(m.aliases))
	for k, v := range m.aliases {
		aliases[k] = v
	}
	return aliases
}

// Rules returns the namespace rules of the alias.  An empty rule set is
// returned if none were added.
func (m *Manager) Rules(alias string) *namespace.RuleSet {
	if rs, ok := m.namespacer.Rules(alias); ok {
		return rs
	}
	return namespace.NewRuleSet()
}

// Namespaces returns the namespace rule registry.
func (m *Manager) Namespaces() *namespace.Manager {
	return m.namespacer
}

// Namespacing reports whether namespaced requests are matched.
func (m *Manager) Namespacing() bool {
	return m.useNamespacing
}

// Enable registers the hook at the end of the stack.
//
// If the hook is already registered it stays where it is when nothing would
// change: it is last and either namespacing is not requested or is already
// on, or it is not last and only plain enabling is requested while
// namespacing is already on.  In every other case it is moved to the end of
// the stack and the namespacing flag is set to useNamespacing.
func (m *Manager) Enable(useNamespacing bool) {
	if registered, last := m.Registered(); registered {
		if last && (!useNamespacing || m.useNamespacing) {
			return
		}
		if !last && !useNamespacing && m.useNamespacing {
			return
		}
		m.stack.Remove(m)
	}

	m.stack.Append(m)
	m.useNamespacing = useNamespacing

	m.logger.Debug().
		Bool("namespacing", useNamespacing).
		Int("index", m.stack.IndexOf(m)).
		Msg("alias hook enabled")
}

// Disable removes the hook from the stack, or only turns off namespacing.
// If removing the hook leaves the stack empty, the legacy hook of the stack
// (if any) is restored.
func (m *Manager) Disable(onlyNamespacing bool) {
	if !onlyNamespacing {
		m.stack.Remove(m)
		m.restoreLegacyHook()
	}
	m.useNamespacing = false

	m.logger.Debug().
		Bool("onlyNamespacing", onlyNamespacing).
		Msg("alias hook disabled")
}

// Registered reports whether the hook is on the stack and whether it is the
// last entry.
func (m *Manager) Registered() (registered, last bool) {
	index := m.stack.IndexOf(m)
	if index < 0 {
		return false, false
	}
	return true, index == len(m.stack.Hooks())-1
}

// Load implements the host.Hook interface.  A requested name that is an alias
// is bound to its original.  Otherwise, when namespacing is on, the base name
// of the request is matched against the namespace rules.
func (m *Manager) Load(name string) bool {
	if original, ok := m.aliases[name]; ok {
		return m.bind(name, original)
	}
	if m.useNamespacing {
		if alias, ok := m.NamespaceAlias(name); ok {
			return m.bind(name, m.aliases[alias])
		}
	}
	return false
}

// NamespaceAlias returns the alias that a namespaced class resolves to.
func (m *Manager) NamespaceAlias(class string) (string, bool) {
	return m.namespacer.Resolve(class, func(alias string) bool {
		_, ok := m.aliases[alias]
		return ok
	})
}

func (m *Manager) bind(name, original string) bool {
	if err := m.symbols.Bind(name, original); err != nil {
		m.logger.Debug().Err(err).Str("name", name).Msg("alias not bound")
		return false
	}
	m.logger.Debug().Str("name", name).Str("original", original).Msg("alias bound")
	return true
}

func (m *Manager) restoreLegacyHook() {
	legacy, ok := m.stack.(host.LegacyHookStack)
	if !ok || len(m.stack.Hooks()) > 0 {
		return
	}
	if hook, ok := legacy.LegacyHook(); ok {
		m.stack.Append(hook)
		m.logger.Debug().Msg("legacy hook restored")
	}
}
