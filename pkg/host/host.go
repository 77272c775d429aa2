// Package host models the lazy symbol resolution mechanism that resolution
// hooks are registered with: an ordered stack of hooks invoked on a miss, and
// a symbol table that hooks bind names into.
package host

import "fmt"

// Hook is invoked when a requested name is not known to the symbol table.
// Implementations must be comparable (typically a pointer) since stacks find
// hooks by identity.
type Hook interface {
	// Load is called with the requested name.  It reports whether the hook
	// bound the name.
	Load(name string) bool
}

// HookStack is the ordered, shared list of hooks.
type HookStack interface {
	// Append adds the hook to the end of the stack.
	Append(hook Hook)
	// Remove removes the hook from the stack.  It reports whether the hook
	// was present.
	Remove(hook Hook) bool
	// Hooks returns a copy of the stack, in invocation order.
	Hooks() []Hook
	// IndexOf returns the position of the hook, or -1.
	IndexOf(hook Hook) int
}

// LegacyHookStack is implemented by stacks that fall back to a single legacy
// hook when no hook is registered.
type LegacyHookStack interface {
	HookStack
	// LegacyHook returns the legacy hook, if one exists.
	LegacyHook() (Hook, bool)
}

// SymbolTable holds the names known to the host.
type SymbolTable interface {
	// Bind makes alias equivalent to canonical.
	Bind(alias, canonical string) error
	// Resolve returns the name a known symbol ultimately refers to.
	Resolve(name string) (string, bool)
}

// Host is the full host capability.
type Host interface {
	HookStack
	SymbolTable
	// Lookup resolves the name, invoking the hooks on a miss.
	Lookup(name string) (string, bool)
}

// HookFunc adapts a function to the Hook interface.
type HookFunc struct {
	// Name is used for diagnostics only.
	Name string
	fn   func(name string) bool
}

// NewHookFunc constructs a new HookFunc.
func NewHookFunc(name string, fn func(name string) bool) *HookFunc {
	return &HookFunc{Name: name, fn: fn}
}

// Load implements the Hook interface.
func (h *HookFunc) Load(name string) bool {
	return h.fn(name)
}

// String implements fmt.Stringer
func (h *HookFunc) String() string {
	return fmt.Sprintf("hook(%s)", h.Name)
}
