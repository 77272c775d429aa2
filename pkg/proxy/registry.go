// Package proxy holds the targets that static proxy names resolve to.
package proxy

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/stackb/statical/pkg/input"
)

// Registry maps proxy names to their Target.
type Registry struct {
	targets map[string]*Target
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[string]*Target),
	}
}

// NewTarget returns the Target for an instance or factory.  Nil and
// primitive values are rejected.
func NewTarget(value any) (*Target, error) {
	switch t := value.(type) {
	case Factory:
		if t != nil {
			return NewFactoryTarget(t), nil
		}
	case func() any:
		if t != nil {
			return NewFactoryTarget(t), nil
		}
	}
	if !isObject(value) {
		return nil, fmt.Errorf("%w: target must be an instance or factory, got %T", input.ErrInvalidArgument, value)
	}
	return NewInstanceTarget(value), nil
}

// AddInstance registers an instance or factory under the name, replacing any
// previous Target.
func (r *Registry) AddInstance(name string, value any) error {
	target, err := NewTarget(value)
	if err != nil {
		return err
	}
	r.Put(name, target)
	return nil
}

// AddService registers a container service under the name, replacing any
// previous Target.
func (r *Registry) AddService(name, id string, lookup Lookup) error {
	if lookup == nil {
		return fmt.Errorf("%w: container must be a callable", input.ErrInvalidArgument)
	}
	r.Put(name, NewServiceTarget(id, lookup))
	return nil
}

// Put registers the target under the name.
func (r *Registry) Put(name string, target *Target) {
	r.targets[name] = target
}

// Get returns the target registered under the name.
func (r *Registry) Get(name string) (*Target, bool) {
	target, ok := r.targets[name]
	return target, ok
}

// Names returns the sorted list of registered names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the value of the Target registered under the name.
func (r *Registry) Resolve(name string) (any, error) {
	target, ok := r.targets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return target.Resolve(), nil
}

func isObject(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !reflect.ValueOf(value).IsNil()
	}
	return true
}
