package container

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapGet(t *testing.T) {
	var builds int
	m := New().
		Set("foo", "a value").
		Set("bar", func() any {
			builds++
			return &struct{ N int }{N: builds}
		})

	if diff := cmp.Diff("a value", m.Get("foo")); diff != "" {
		t.Errorf("foo (-want +got):\n%s", diff)
	}
	first := m.Get("bar")
	second := m.Get("bar")
	if first != second {
		t.Error("builder result should be cached")
	}
	if diff := cmp.Diff(1, builds); diff != "" {
		t.Errorf("builds (-want +got):\n%s", diff)
	}
	if m.Get("baz") != nil {
		t.Error("missing id should be nil")
	}
}

func TestMapIDs(t *testing.T) {
	m := New()
	if diff := cmp.Diff([]string{}, m.IDs()); diff != "" {
		t.Errorf("empty (-want +got):\n%s", diff)
	}
	m.Set("foo", 1).Set("bar", 2)
	if !m.Has("foo") || m.Has("baz") {
		t.Error("unexpected Has result")
	}
	if diff := cmp.Diff([]string{"bar", "foo"}, m.IDs()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
