// Package collections holds small string containers: a stack used to track
// names being resolved, and a repeatable flag value.
package collections

import "strings"

// StringStack is a LIFO stack of strings.  The zero value is an empty stack.
type StringStack []string

// IsEmpty reports whether the stack is empty.
func (s *StringStack) IsEmpty() bool {
	return len(*s) == 0
}

// Push pushes x onto the stack.
func (s *StringStack) Push(x string) {
	*s = append(*s, x)
}

// Pop removes and returns the top of the stack.  It returns false if the
// stack is empty.
func (s *StringStack) Pop() (string, bool) {
	x, ok := s.Peek()
	if ok {
		*s = (*s)[:len(*s)-1]
	}
	return x, ok
}

// Peek returns the top of the stack.  It returns false if the stack is empty.
func (s *StringStack) Peek() (string, bool) {
	if s.IsEmpty() {
		return "", false
	}
	return (*s)[len(*s)-1], true
}

// Contains reports whether x is anywhere on the stack.
func (s *StringStack) Contains(x string) bool {
	for _, v := range *s {
		if v == x {
			return true
		}
	}
	return false
}

// StringSlice is a flag.Value that collects every occurrence of a repeated
// flag.
type StringSlice []string

// String implements the flag.Value interface.
func (i *StringSlice) String() string {
	if i == nil {
		return ""
	}
	return strings.Join(*i, ",")
}

// Set implements the flag.Value interface.
func (i *StringSlice) Set(value string) error {
	*i = append(*i, value)
	return nil
}
