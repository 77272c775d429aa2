package statical

import "errors"

// ErrContainerRequired is returned when a service or configured instance
// needs a container and none is set.
var ErrContainerRequired = errors.New("container required")

// ErrSingletonViolation is returned by New after MakeSingleton was called.
var ErrSingletonViolation = errors.New("manager has been set as a singleton")
