// Package statical wires aliases, namespace rules and proxy targets to a host
// resolution mechanism.
//
// A Manager registers proxies under a static alias.  Once enabled, a request
// for the alias (or, with namespacing, for a namespaced name whose rules
// match) is bound by the host to the proxy name, and Resolve returns the
// current target of that proxy.
package statical

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/stackb/statical/pkg/alias"
	"github.com/stackb/statical/pkg/config"
	"github.com/stackb/statical/pkg/host"
	"github.com/stackb/statical/pkg/input"
	"github.com/stackb/statical/pkg/namespace"
	"github.com/stackb/statical/pkg/proxy"
)

const (
	// SelfAlias is the alias the manager registers itself under.
	SelfAlias = "Statical"
	// SelfProxy is the proxy name the manager registers itself under.
	SelfProxy = `Statical\StaticalProxy`
)

// singleton is set once by MakeSingleton and never cleared.
var singleton atomic.Bool

// Manager is the front end for proxy registration.
type Manager struct {
	logger    zerolog.Logger
	host      host.Host
	aliases   *alias.Manager
	registry  *proxy.Registry
	container proxy.Lookup
}

// Option configures a Manager under construction.
type Option func(*options)

type options struct {
	container any
	config    *config.Config
}

// WithContainer sets the default container.
func WithContainer(container any) Option {
	return func(o *options) {
		o.container = container
	}
}

// WithConfig applies the config once the manager is constructed.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// New constructs a Manager bound to the host and makes it the resolver of
// every proxy.Facade.  It fails with ErrSingletonViolation once MakeSingleton
// was called.
func New(logger zerolog.Logger, h host.Host, opts ...Option) (*Manager, error) {
	if singleton.Load() {
		return nil, ErrSingletonViolation
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := &Manager{
		logger:   logger,
		host:     h,
		aliases:  alias.NewManager(logger, h, h),
		registry: proxy.NewRegistry(),
	}

	if o.config != nil {
		if err := m.Configure(o.config, o.container); err != nil {
			return nil, err
		}
	} else if o.container != nil {
		if _, err := m.SetContainer(o.container); err != nil {
			return nil, err
		}
	}

	proxy.SetResolver(m)
	return m, nil
}

// MakeSingleton makes every further call to New fail.
func (m *Manager) MakeSingleton() {
	singleton.Store(true)
}

// AddProxyInstance registers an instance or factory as the target of the
// proxy and maps the alias to it.
func (m *Manager) AddProxyInstance(aliasName, target string, instance any, namespaces ...string) error {
	t, err := m.checkProxy(aliasName, target, namespaces)
	if err != nil {
		return err
	}
	to, err := proxy.NewTarget(instance)
	if err != nil {
		return err
	}
	m.addProxy(aliasName, t, to, namespaces)
	return nil
}

// AddProxyService registers a container service as the target of the proxy
// and maps the alias to it.  A nil container selects the default container.
func (m *Manager) AddProxyService(aliasName, target, id string, container any, namespaces ...string) error {
	t, err := m.checkProxy(aliasName, target, namespaces)
	if err != nil {
		return err
	}
	if _, err := input.Check(id); err != nil {
		return err
	}
	lookup, err := m.lookupOrDefault(container)
	if err != nil {
		return err
	}
	m.addProxy(aliasName, t, proxy.NewServiceTarget(id, lookup), namespaces)
	return nil
}

// AddNamespace adds namespace rules for the alias.
func (m *Manager) AddNamespace(aliasName string, specs ...string) error {
	return m.aliases.AddNamespace(aliasName, specs...)
}

// AddProxySelf registers the manager under SelfAlias, available in every
// namespace, and enables the hook.
func (m *Manager) AddProxySelf() error {
	if err := m.AddProxyInstance(SelfAlias, SelfProxy, m, namespace.Wildcard); err != nil {
		return err
	}
	m.Enable(false)
	return nil
}

// SetContainer sets the default container and returns the previous one.
func (m *Manager) SetContainer(container any) (proxy.Lookup, error) {
	lookup, err := proxy.FormatContainer(container)
	if err != nil {
		return nil, err
	}
	previous := m.container
	m.container = lookup
	return previous, nil
}

// Container returns the default container, or nil.
func (m *Manager) Container() proxy.Lookup {
	return m.container
}

// Enable registers the resolution hook at the end of the host stack.
func (m *Manager) Enable(useNamespacing bool) {
	m.aliases.Enable(useNamespacing)
}

// Disable unregisters the resolution hook, or only turns off namespacing.
func (m *Manager) Disable(onlyNamespacing bool) {
	m.aliases.Disable(onlyNamespacing)
}

// Registered reports whether the hook is on the host stack and whether it is
// the last entry.
func (m *Manager) Registered() (registered, last bool) {
	return m.aliases.Registered()
}

// Namespacing reports whether namespaced requests are matched.
func (m *Manager) Namespacing() bool {
	return m.aliases.Namespacing()
}

// Aliases returns the alias registry.
func (m *Manager) Aliases() *alias.Manager {
	return m.aliases
}

// ProxyTarget returns the current target of the proxy.
func (m *Manager) ProxyTarget(target string) (any, error) {
	return m.registry.Resolve(target)
}

// Resolve looks the name up in the host, which may bind it through the hook,
// and returns the target of the proxy it refers to.  A name unknown to the
// host is taken as a proxy name.
func (m *Manager) Resolve(name string) (any, error) {
	target := name
	if canonical, ok := m.host.Lookup(name); ok {
		target = canonical
	}
	value, err := m.registry.Resolve(target)
	if err != nil {
		return nil, err
	}
	m.logger.Debug().Str("name", name).Str("target", target).Msg("resolved proxy")
	return value, nil
}

func (m *Manager) checkProxy(aliasName, target string, namespaces []string) (string, error) {
	target, err := input.CheckNamespace(target)
	if err != nil {
		return "", err
	}
	if _, err := input.CheckAlias(aliasName); err != nil {
		return "", err
	}
	if err := namespace.Validate(namespaces...); err != nil {
		return "", err
	}
	return target, nil
}

// addProxy assumes its arguments have been checked.
func (m *Manager) addProxy(aliasName, target string, t *proxy.Target, namespaces []string) {
	m.registry.Put(target, t)
	if err := m.aliases.Add(target, aliasName); err != nil {
		panic(fmt.Sprintf("unchecked alias %q: %v", aliasName, err))
	}
	if len(namespaces) > 0 {
		if err := m.aliases.AddNamespace(aliasName, namespaces...); err != nil {
			panic(fmt.Sprintf("unchecked namespaces %v: %v", namespaces, err))
		}
	}
	m.logger.Debug().
		Str("alias", aliasName).
		Str("target", target).
		Stringer("kind", t.Kind()).
		Msg("added proxy")
}

func (m *Manager) lookupOrDefault(container any) (proxy.Lookup, error) {
	if container != nil {
		return proxy.FormatContainer(container)
	}
	if m.container == nil {
		return nil, ErrContainerRequired
	}
	return m.container, nil
}
