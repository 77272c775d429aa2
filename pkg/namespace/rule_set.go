package namespace

import (
	"sort"
	"strings"

	"github.com/dghubble/trie"

	"github.com/stackb/statical/pkg/input"
)

// RuleSet holds the namespace rules of a single alias.
type RuleSet struct {
	// Any is true when the alias resolves from every namespace.
	Any bool
	// prefixes indexes path prefixes by namespace segment.
	prefixes *trie.PathTrie
	// prefixList keeps insertion order of prefixes.
	prefixList []string
	// names is the set of exact namespaces.
	names map[string]bool
	// nameList keeps insertion order of names.
	nameList []string
}

// NewRuleSet constructs an empty RuleSet.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		prefixes: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: namespaceSegmenter,
		}),
		names: make(map[string]bool),
	}
}

// Put merges a classified value into the set.  Duplicates are ignored.
func (rs *RuleSet) Put(group Group, value string) {
	switch group {
	case GroupAny:
		rs.Any = true
	case GroupPathPrefix:
		if rs.prefixes.Put(value, value) {
			rs.prefixList = append(rs.prefixList, value)
		}
	case GroupExactName:
		if !rs.names[value] {
			rs.names[value] = true
			rs.nameList = append(rs.nameList, value)
		}
	}
}

// Prefixes returns the path prefixes, in the order they were added.
func (rs *RuleSet) Prefixes() []string {
	return append([]string(nil), rs.prefixList...)
}

// Names returns the exact namespaces, in the order they were added.
func (rs *RuleSet) Names() []string {
	return append([]string(nil), rs.nameList...)
}

// IsEmpty reports whether no rule has been added.
func (rs *RuleSet) IsEmpty() bool {
	return !rs.Any && len(rs.prefixList) == 0 && len(rs.nameList) == 0
}

// Match reports whether the class matches the rules of the alias.
func (rs *RuleSet) Match(class, alias string) bool {
	if rs.Any {
		return true
	}
	if rs.matchPrefix(class) {
		return true
	}
	for _, name := range rs.nameList {
		if name+input.Separator+alias == class {
			return true
		}
	}
	return false
}

func (rs *RuleSet) matchPrefix(class string) bool {
	var found bool
	rs.prefixes.WalkPath(class, func(key string, value interface{}) error {
		found = true
		return errStopWalk
	})
	return found
}

// Map returns the serialized form of the rule set.  Empty groups are omitted.
func (rs *RuleSet) Map() map[string]interface{} {
	m := make(map[string]interface{})
	if rs.Any {
		m[GroupAny.String()] = true
	}
	if len(rs.prefixList) > 0 {
		m[GroupPathPrefix.String()] = stringList(rs.prefixList)
	}
	if len(rs.nameList) > 0 {
		m[GroupExactName.String()] = stringList(rs.nameList)
	}
	return m
}

// String implements fmt.Stringer.
func (rs *RuleSet) String() string {
	var parts []string
	if rs.Any {
		parts = append(parts, "any")
	}
	prefixes := rs.Prefixes()
	sort.Strings(prefixes)
	for _, p := range prefixes {
		parts = append(parts, "base:"+p)
	}
	names := rs.Names()
	sort.Strings(names)
	for _, n := range names {
		parts = append(parts, "root:"+n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func stringList(values []string) []interface{} {
	list := make([]interface{}, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}

// namespaceSegmenter segments class names after each separator, keeping the
// separator in the segment. For example, `a\b\C` -> (`a\`, 2), (`b\`, 4),
// (`C`, -1) in successive calls.  A stored prefix always ends with a
// separator, so walking the segments of a class visits exactly the prefixes
// that are literal prefixes of it.
func namespaceSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.Index(path[start:], input.Separator)
	if end == -1 {
		return path[start:], -1
	}
	next = start + end + len(input.Separator)
	if next >= len(path) {
		return path[start:], -1
	}
	return path[start:next], next
}
