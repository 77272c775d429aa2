package statical

import (
	"fmt"

	"github.com/stackb/statical/pkg/config"
	"github.com/stackb/statical/pkg/input"
	"github.com/stackb/statical/pkg/namespace"
	"github.com/stackb/statical/pkg/proxy"
)

// proxyEntry is a checked proxy registration.
type proxyEntry struct {
	alias      string
	target     string
	to         *proxy.Target
	namespaces []string
}

// namespaceEntry is a checked namespace registration.
type namespaceEntry struct {
	alias string
	specs []string
}

// plan is the checked form of a config.
type plan struct {
	container  proxy.Lookup
	proxies    []proxyEntry
	namespaces []namespaceEntry
	boot       config.Boot
}

// Configure applies the config.  A non-nil container replaces the default
// container; the container of the config, if any, is used for the entries of
// the config only.  Instances are fetched from the container by their
// lowercased alias.  Every entry is checked before anything is changed.
func (m *Manager) Configure(cfg *config.Config, container any) error {
	p, err := m.plan(cfg, container)
	if err != nil {
		return err
	}

	if p.container != nil {
		m.container = p.container
	}
	for _, e := range p.proxies {
		m.addProxy(e.alias, e.target, e.to, e.namespaces)
	}
	for _, e := range p.namespaces {
		if err := m.aliases.AddNamespace(e.alias, e.specs...); err != nil {
			panic(fmt.Sprintf("unchecked namespaces %v: %v", e.specs, err))
		}
	}

	m.logger.Debug().
		Int("proxies", len(p.proxies)).
		Int("namespaces", len(p.namespaces)).
		Str("boot", string(p.boot)).
		Msg("configured")

	return m.boot(p.boot)
}

func (m *Manager) plan(cfg *config.Config, container any) (*plan, error) {
	p := &plan{boot: cfg.Boot}

	lookup, entriesLookup, err := m.configContainers(cfg, container)
	if err != nil {
		return nil, err
	}
	p.container = lookup

	if cfg.RequiresContainer() && entriesLookup == nil {
		return nil, ErrContainerRequired
	}

	for _, name := range config.SortedKeys(cfg.Instances) {
		item := cfg.Instances[name]
		namespaces := nonEmpty(item[1])
		target, err := m.checkProxy(name, item[0], namespaces)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.InstancesKey, name, err)
		}
		to, err := proxy.NewTarget(entriesLookup(cfg.InstanceID(name)))
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.InstancesKey, name, err)
		}
		p.proxies = append(p.proxies, proxyEntry{name, target, to, namespaces})
	}

	for _, name := range config.SortedKeys(cfg.Services) {
		item := cfg.Services[name]
		target, err := m.checkProxy(name, item[0], nil)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.ServicesKey, name, err)
		}
		to := proxy.NewServiceTarget(cfg.ServiceID(name), entriesLookup)
		p.proxies = append(p.proxies, proxyEntry{alias: name, target: target, to: to})
	}

	for _, name := range config.SortedKeys(cfg.Namespaces) {
		specs := cfg.Namespaces[name].Values()
		if _, err := input.Check(name); err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.NamespacesKey, name, err)
		}
		if err := namespace.Validate(specs...); err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.NamespacesKey, name, err)
		}
		p.namespaces = append(p.namespaces, namespaceEntry{name, specs})
	}

	return p, nil
}

// configContainers returns the checked container argument and the lookup
// used for the entries of the config.
func (m *Manager) configContainers(cfg *config.Config, container any) (arg, entries proxy.Lookup, err error) {
	entries = m.container
	if container != nil {
		if arg, err = proxy.FormatContainer(container); err != nil {
			return nil, nil, err
		}
		entries = arg
	}
	if cfg.Container != nil {
		if entries, err = proxy.FormatContainer(cfg.Container); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", config.ContainerKey, err)
		}
	}
	return arg, entries, nil
}

func (m *Manager) boot(boot config.Boot) error {
	switch boot {
	case config.BootSelf:
		return m.AddProxySelf()
	case config.BootEnable:
		m.Enable(false)
	}
	return nil
}

func nonEmpty(values ...string) []string {
	var result []string
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
