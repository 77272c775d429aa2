// Package input holds the argument checks shared by the alias, namespace and
// proxy packages.  Every failure wraps ErrInvalidArgument.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Separator is the namespace separator of fully-qualified symbol names.
const Separator = `\`

// ErrInvalidArgument is the error value wrapped by every argument check
// failure.
var ErrInvalidArgument = errors.New("invalid argument")

// Check returns an error if the value is empty.
func Check(value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%w: empty or invalid value", ErrInvalidArgument)
	}
	return value, nil
}

// CheckAlias returns an error if the alias is empty or namespaced.
func CheckAlias(value string) (string, error) {
	value, err := Check(value)
	if err != nil {
		return "", err
	}
	if strings.Contains(value, Separator) {
		return "", fmt.Errorf("%w: alias must not be namespaced: %q", ErrInvalidArgument, value)
	}
	return value, nil
}

// CheckNamespace returns an error if the namespace is empty or has a leading
// or trailing separator.
func CheckNamespace(value string) (string, error) {
	value, err := Check(value)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(value, Separator) || strings.HasSuffix(value, Separator) {
		return "", fmt.Errorf("%w: invalid namespace: %q", ErrInvalidArgument, value)
	}
	return value, nil
}
