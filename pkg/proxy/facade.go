package proxy

import "fmt"

// Resolver returns the target value for a requested name.
type Resolver interface {
	Resolve(name string) (any, error)
}

var resolver Resolver

// SetResolver sets the Resolver used by every Facade.
func SetResolver(r Resolver) {
	resolver = r
}

// Facade is a static proxy: a fixed name whose target is looked up on each
// use.
type Facade struct {
	name string
}

// NewFacade constructs a Facade for the given name.
func NewFacade(name string) *Facade {
	return &Facade{name: name}
}

// Name returns the proxied name.
func (f *Facade) Name() string {
	return f.name
}

// Instance returns the current target of the Facade.
func (f *Facade) Instance() (any, error) {
	if resolver == nil {
		return nil, ErrResolverNotSet
	}
	return resolver.Resolve(f.name)
}

// As returns the target of the Facade as a T.
func As[T any](f *Facade) (T, error) {
	var zero T
	value, err := f.Instance()
	if err != nil {
		return zero, err
	}
	t, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%s: target is %T, not %T", f.name, value, zero)
	}
	return t, nil
}
