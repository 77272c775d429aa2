package proxy

import "fmt"

// Kind is the resolution strategy of a Target.
type Kind int

const (
	// KindUnknown is the zero value.
	KindUnknown Kind = 0
	// KindInstance resolves to a stored value.
	KindInstance Kind = 1
	// KindFactory resolves by invoking a factory once, then behaves like
	// KindInstance.
	KindFactory Kind = 2
	// KindService resolves by a container lookup on every call.
	KindService Kind = 3
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInstance:
		return "instance"
	case KindFactory:
		return "factory"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// Factory builds the target value.  It is invoked at most once.
type Factory func() any

// Lookup returns the value registered under the id in a container.
type Lookup func(id string) any

// Target is the resolution strategy registered for a proxy name.
type Target struct {
	kind     Kind
	id       string
	instance any
	factory  Factory
	lookup   Lookup
}

// NewInstanceTarget constructs a Target for a live value.
func NewInstanceTarget(instance any) *Target {
	return &Target{kind: KindInstance, instance: instance}
}

// NewFactoryTarget constructs a Target for a factory.
func NewFactoryTarget(factory Factory) *Target {
	return &Target{kind: KindFactory, factory: factory}
}

// NewServiceTarget constructs a Target for a container service.
func NewServiceTarget(id string, lookup Lookup) *Target {
	return &Target{kind: KindService, id: id, lookup: lookup}
}

// Kind returns the current resolution strategy.
func (t *Target) Kind() Kind {
	return t.kind
}

// ID returns the container id of a service target.
func (t *Target) ID() string {
	return t.id
}

// Resolve returns the target value.
func (t *Target) Resolve() any {
	switch t.kind {
	case KindService:
		return t.lookup(t.id)
	case KindFactory:
		t.instance = t.factory()
		t.factory = nil
		t.kind = KindInstance
	}
	return t.instance
}

// String implements fmt.Stringer
func (t *Target) String() string {
	if t.kind == KindService {
		return fmt.Sprintf("(%v %s)", t.kind, t.id)
	}
	return fmt.Sprintf("(%v)", t.kind)
}
