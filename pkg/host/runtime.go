package host

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stackb/statical/pkg/collections"
)

// ErrSymbolExists is returned when binding a name that is already known.
var ErrSymbolExists = errors.New("symbol already exists")

// ErrSymbolCycle is returned when a binding would make a name refer to
// itself.
var ErrSymbolCycle = errors.New("symbol cycle")

// Runtime is an in-memory Host.
type Runtime struct {
	logger   zerolog.Logger
	hooks    []Hook
	legacy   Hook
	defined  map[string]bool
	bindings map[string]string
	// loading holds the names whose hooks are currently running.
	loading collections.StringStack
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLegacyHook sets the hook that is restored when the stack is emptied by
// a disabling resolution hook.
func WithLegacyHook(hook Hook) RuntimeOption {
	return func(r *Runtime) {
		r.legacy = hook
	}
}

// WithHooks appends the given hooks to the initial stack.
func WithHooks(hooks ...Hook) RuntimeOption {
	return func(r *Runtime) {
		r.hooks = append(r.hooks, hooks...)
	}
}

// NewRuntime constructs a new Runtime.
func NewRuntime(logger zerolog.Logger, options ...RuntimeOption) *Runtime {
	r := &Runtime{
		logger:   logger,
		defined:  make(map[string]bool),
		bindings: make(map[string]string),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Append implements part of the HookStack interface.
func (r *Runtime) Append(hook Hook) {
	r.hooks = append(r.hooks, hook)
}

// Remove implements part of the HookStack interface.
func (r *Runtime) Remove(hook Hook) bool {
	i := r.IndexOf(hook)
	if i < 0 {
		return false
	}
	r.hooks = append(r.hooks[:i:i], r.hooks[i+1:]...)
	return true
}

// Hooks implements part of the HookStack interface.
func (r *Runtime) Hooks() []Hook {
	return append([]Hook(nil), r.hooks...)
}

// IndexOf implements part of the HookStack interface.
func (r *Runtime) IndexOf(hook Hook) int {
	for i, h := range r.hooks {
		if h == hook {
			return i
		}
	}
	return -1
}

// LegacyHook implements part of the LegacyHookStack interface.
func (r *Runtime) LegacyHook() (Hook, bool) {
	return r.legacy, r.legacy != nil
}

// Define declares names as concrete symbols.
func (r *Runtime) Define(names ...string) {
	for _, name := range names {
		r.defined[name] = true
	}
}

// Bind implements part of the SymbolTable interface.  Like a class alias, the
// canonical name is looked up first, which may run the hooks for it.  A
// binding whose canonical name resolves back to the alias is refused.
func (r *Runtime) Bind(alias, canonical string) error {
	if alias == canonical {
		return fmt.Errorf("%w: cannot bind %q to itself", ErrSymbolCycle, alias)
	}
	if _, ok := r.Resolve(alias); ok {
		return fmt.Errorf("%w: %q", ErrSymbolExists, alias)
	}
	r.Lookup(canonical)
	// the hooks for canonical may have bound either name
	if _, ok := r.Resolve(alias); ok {
		return fmt.Errorf("%w: %q", ErrSymbolExists, alias)
	}
	if resolved, ok := r.Resolve(canonical); ok && resolved == alias {
		return fmt.Errorf("%w: %q -> %q -> %q", ErrSymbolCycle, alias, canonical, alias)
	}
	r.bindings[alias] = canonical
	r.logger.Debug().Str("alias", alias).Str("canonical", canonical).Msg("bound symbol")
	return nil
}

// Resolve implements part of the SymbolTable interface.  Bindings are
// followed until a defined or unbound name is reached.  A chain that loops
// does not resolve.
func (r *Runtime) Resolve(name string) (string, bool) {
	if r.defined[name] {
		return name, true
	}
	next, ok := r.bindings[name]
	if !ok {
		return "", false
	}
	seen := map[string]bool{name: true}
	for {
		if r.defined[next] {
			return next, true
		}
		to, ok := r.bindings[next]
		if !ok {
			return next, true
		}
		if seen[to] {
			return "", false
		}
		seen[next] = true
		next = to
	}
}

// Lookup implements part of the Host interface.  A name requested again while
// its own hooks are running is reported as not found.
func (r *Runtime) Lookup(name string) (string, bool) {
	if resolved, ok := r.Resolve(name); ok {
		return resolved, true
	}
	if r.loading.Contains(name) {
		r.logger.Debug().Str("name", name).Msg("skipping reentrant lookup")
		return "", false
	}

	r.loading.Push(name)
	defer r.loading.Pop()

	for _, hook := range r.Hooks() {
		hook.Load(name)
		if resolved, ok := r.Resolve(name); ok {
			return resolved, true
		}
	}
	return "", false
}
