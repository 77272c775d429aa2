package namespace

import (
	"strings"

	"github.com/stackb/statical/pkg/input"
)

// Wildcard is both the namespace specifier that matches every namespace and
// the alias key whose rules apply to every alias.
const Wildcard = "*"

// Group classifies a namespace specifier.
type Group int

const (
	// GroupUnknown is the zero value.
	GroupUnknown Group = 0
	// GroupAny matches from every namespace ("*").
	GroupAny Group = 1
	// GroupPathPrefix matches any class under a namespace ("Bar\*").
	GroupPathPrefix Group = 2
	// GroupExactName matches a class directly in a namespace ("Bar\Baz").
	GroupExactName Group = 3
)

// String implements fmt.Stringer.  The names are those of the serialized rule
// set form.
func (g Group) String() string {
	switch g {
	case GroupAny:
		return "any"
	case GroupPathPrefix:
		return "base"
	case GroupExactName:
		return "root"
	default:
		return "unknown"
	}
}

// Classify returns the group of the given namespace specifier along with the
// value to store for it.  Path prefixes have their trailing "*" trimmed, so
// "Bar\*" is stored as "Bar\".
func Classify(spec string) (Group, string, error) {
	spec, err := input.CheckNamespace(spec)
	if err != nil {
		return GroupUnknown, "", err
	}
	if spec == Wildcard {
		return GroupAny, spec, nil
	}
	if strings.HasSuffix(spec, input.Separator+Wildcard) {
		return GroupPathPrefix, strings.TrimSuffix(spec, Wildcard), nil
	}
	return GroupExactName, spec, nil
}

// BaseName returns the last separator-delimited segment of a class name.
func BaseName(class string) string {
	if i := strings.LastIndex(class, input.Separator); i >= 0 {
		return class[i+1:]
	}
	return class
}
