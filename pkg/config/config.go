// Package config parses the declarative proxy settings.
//
// Settings are an already-parsed mapping with the keys:
//
//	instances   alias -> [target, namespace]
//	services    alias -> [target, id]
//	namespaces  alias -> [namespace, namespace]
//	container   the default container
//	boot        "", "self", "enable" or "none"
//
// Each item is a string or a list of strings.  Every item is trimmed and
// padded or truncated to exactly two slots.
//
// An instances item names no object: the instance is fetched from the
// container by the lowercased alias when the config is applied (see
// InstanceID).  A services item with no id is looked up by the lowercased
// alias on every resolution (see ServiceID).
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Keys of the settings mapping.
const (
	InstancesKey  = "instances"
	ServicesKey   = "services"
	NamespacesKey = "namespaces"
	ContainerKey  = "container"
	BootKey       = "boot"
)

// Keys returns the recognized settings keys.
func Keys() []string {
	return []string{
		InstancesKey,
		ServicesKey,
		NamespacesKey,
		ContainerKey,
		BootKey,
	}
}

// Boot is a startup action.
type Boot string

const (
	// BootDefault performs no startup action.
	BootDefault Boot = ""
	// BootSelf registers the manager as a proxy available in every
	// namespace and enables the hook.
	BootSelf Boot = "self"
	// BootEnable enables the hook.
	BootEnable Boot = "enable"
	// BootNone performs no startup action.
	BootNone Boot = "none"
)

// ErrInvalidConfig is wrapped by every InvalidConfigError.
var ErrInvalidConfig = errors.New("invalid config")

// InvalidConfigError reports a settings value of the wrong type.
type InvalidConfigError struct {
	Key string
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid value for config %s", e.Key)
}

// Unwrap returns ErrInvalidConfig.
func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Item is a normalized settings entry.
type Item [2]string

// Values returns the non-empty slots.
func (it Item) Values() []string {
	var values []string
	for _, v := range it {
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Config is the normalized settings.
type Config struct {
	Instances  map[string]Item
	Services   map[string]Item
	Namespaces map[string]Item
	// Container is the default container, in any form accepted by
	// proxy.FormatContainer.  Nil if not set.
	Container any
	Boot      Boot
}

// Empty returns a Config with every setting at its default.
func Empty() *Config {
	return &Config{
		Instances:  make(map[string]Item),
		Services:   make(map[string]Item),
		Namespaces: make(map[string]Item),
	}
}

// FromMap type-checks and normalizes the settings.  A missing key takes its
// default; a value of the wrong type is an InvalidConfigError.
func FromMap(settings map[string]any) (*Config, error) {
	c := Empty()
	var err error
	if c.Instances, err = itemsOf(settings, InstancesKey); err != nil {
		return nil, err
	}
	if c.Services, err = itemsOf(settings, ServicesKey); err != nil {
		return nil, err
	}
	if c.Namespaces, err = itemsOf(settings, NamespacesKey); err != nil {
		return nil, err
	}
	c.Container = settings[ContainerKey]
	if c.Boot, err = bootOf(settings); err != nil {
		return nil, err
	}
	return c, nil
}

// RequiresContainer reports whether instances or services are configured.
func (c *Config) RequiresContainer() bool {
	return len(c.Instances) > 0 || len(c.Services) > 0
}

// ServiceID returns the container id of the service alias: the configured
// id, or the lowercased alias if none.
func (c *Config) ServiceID(alias string) string {
	if id := c.Services[alias][1]; id != "" {
		return id
	}
	return strings.ToLower(alias)
}

// InstanceID returns the container id an instance alias is fetched by.
func (c *Config) InstanceID(alias string) string {
	return strings.ToLower(alias)
}

// Merge returns a new Config with the entries of cfgs applied in order.
// Later entries replace earlier ones per alias; the last non-default boot
// and non-nil container win.
func Merge(cfgs ...*Config) *Config {
	merged := Empty()
	for _, src := range cfgs {
		if src == nil {
			continue
		}
		for k, v := range src.Instances {
			merged.Instances[k] = v
		}
		for k, v := range src.Services {
			merged.Services[k] = v
		}
		for k, v := range src.Namespaces {
			merged.Namespaces[k] = v
		}
		if src.Container != nil {
			merged.Container = src.Container
		}
		if src.Boot != BootDefault {
			merged.Boot = src.Boot
		}
	}
	return merged
}

// Map returns the settings form of the config, without the container.
func (c *Config) Map() map[string]any {
	return map[string]any{
		InstancesKey:  itemsMap(c.Instances),
		ServicesKey:   itemsMap(c.Services),
		NamespacesKey: itemsMap(c.Namespaces),
		BootKey:       string(c.Boot),
	}
}

// SortedKeys returns the sorted aliases of the items.
func SortedKeys(items map[string]Item) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func itemsMap(items map[string]Item) map[string]any {
	m := make(map[string]any, len(items))
	for k, v := range items {
		m[k] = []any{v[0], v[1]}
	}
	return m
}

func bootOf(settings map[string]any) (Boot, error) {
	value, ok := settings[BootKey]
	if !ok || value == nil {
		return BootDefault, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", &InvalidConfigError{Key: BootKey}
	}
	switch boot := Boot(s); boot {
	case BootDefault, BootSelf, BootEnable, BootNone:
		return boot, nil
	}
	return "", &InvalidConfigError{Key: BootKey}
}

func itemsOf(settings map[string]any, key string) (map[string]Item, error) {
	items := make(map[string]Item)
	value, ok := settings[key]
	if !ok || value == nil {
		return items, nil
	}
	switch t := value.(type) {
	case map[string]any:
		for alias, v := range t {
			item, err := Normalize(v)
			if err != nil {
				return nil, &InvalidConfigError{Key: key}
			}
			items[alias] = item
		}
	case map[string]string:
		for alias, v := range t {
			items[alias], _ = Normalize(v)
		}
	case map[string][]string:
		for alias, v := range t {
			items[alias], _ = Normalize(v)
		}
	default:
		return nil, &InvalidConfigError{Key: key}
	}
	return items, nil
}

// Normalize converts a string or list of strings to an Item.  Each element
// is trimmed; missing slots are empty and extra elements are dropped.
func Normalize(value any) (Item, error) {
	var values []string
	switch t := value.(type) {
	case string:
		values = []string{t}
	case []string:
		values = t
	case []any:
		for _, v := range t {
			s, ok := v.(string)
			if !ok {
				return Item{}, fmt.Errorf("item element must be a string, got %T", v)
			}
			values = append(values, s)
		}
	default:
		return Item{}, fmt.Errorf("item must be a string or list, got %T", value)
	}
	var item Item
	for i := 0; i < len(item) && i < len(values); i++ {
		item[i] = strings.TrimSpace(values[i])
	}
	return item, nil
}
