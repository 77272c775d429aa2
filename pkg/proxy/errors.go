package proxy

import "errors"

// ErrNotRegistered is returned when resolving a name that has no Target.
var ErrNotRegistered = errors.New("not registered as a static proxy")

// ErrResolverNotSet is returned by a Facade when no Resolver has been set.
var ErrResolverNotSet = errors.New("resolver not set")
