package proxy

import (
	"fmt"

	"github.com/stackb/statical/pkg/input"
)

// Getter is implemented by containers with a Get accessor.
type Getter interface {
	Get(id string) any
}

// FormatContainer returns the Lookup for a container.  Accepted forms are a
// Lookup or func(string) any, a Getter, and a map keyed by id.
func FormatContainer(container any) (Lookup, error) {
	switch c := container.(type) {
	case Lookup:
		if c != nil {
			return c, nil
		}
	case func(string) any:
		if c != nil {
			return c, nil
		}
	case Getter:
		if c != nil {
			return c.Get, nil
		}
	case map[string]any:
		if c != nil {
			return func(id string) any { return c[id] }, nil
		}
	}
	return nil, fmt.Errorf("%w: container must be a callable, got %T", input.ErrInvalidArgument, container)
}
