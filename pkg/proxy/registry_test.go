package proxy_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/stackb/statical/pkg/container"
	"github.com/stackb/statical/pkg/input"
	"github.com/stackb/statical/pkg/proxy"
)

const fooProxy = `Statical\Tests\Fixtures\FooProxy`

type Foo struct{ Name string }

type Bar struct{ Name string }

func TestNewTarget(t *testing.T) {
	for name, tc := range map[string]struct {
		value    any
		wantKind proxy.Kind
		wantErr  bool
	}{
		"degenerate": {
			wantErr: true,
		},
		"pointer": {
			value:    &Foo{},
			wantKind: proxy.KindInstance,
		},
		"struct": {
			value:    Foo{},
			wantKind: proxy.KindInstance,
		},
		"map": {
			value:    map[string]int{},
			wantKind: proxy.KindInstance,
		},
		"factory func": {
			value:    func() any { return &Foo{} },
			wantKind: proxy.KindFactory,
		},
		"factory type": {
			value:    proxy.Factory(func() any { return &Foo{} }),
			wantKind: proxy.KindFactory,
		},
		"other func is an instance": {
			value:    func(string) string { return "" },
			wantKind: proxy.KindInstance,
		},
		"nil pointer": {
			value:   (*Foo)(nil),
			wantErr: true,
		},
		"string": {
			value:   "foo",
			wantErr: true,
		},
		"int": {
			value:   42,
			wantErr: true,
		},
		"bool": {
			value:   true,
			wantErr: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			target, err := proxy.NewTarget(tc.value)
			if tc.wantErr {
				if !errors.Is(err, input.ErrInvalidArgument) {
					t.Fatalf("want ErrInvalidArgument, got %v", err)
				}
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.wantKind, target.Kind()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistryResolveInstance(t *testing.T) {
	r := proxy.NewRegistry()
	foo := &Foo{Name: "foo"}
	require.NoError(t, r.AddInstance(fooProxy, foo))

	got, err := r.Resolve(fooProxy)
	require.NoError(t, err)
	require.Same(t, foo, got)
}

func TestRegistryResolveFactoryOnce(t *testing.T) {
	r := proxy.NewRegistry()
	var calls int
	require.NoError(t, r.AddInstance(fooProxy, func() any {
		calls++
		return &Foo{Name: "built"}
	}))

	first, err := r.Resolve(fooProxy)
	require.NoError(t, err)
	second, err := r.Resolve(fooProxy)
	require.NoError(t, err)

	require.Same(t, first, second)
	if diff := cmp.Diff(1, calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	target, _ := r.Get(fooProxy)
	if diff := cmp.Diff(proxy.KindInstance, target.Kind()); diff != "" {
		t.Errorf("kind after resolve (-want +got):\n%s", diff)
	}
}

func TestRegistryResolveServiceEveryCall(t *testing.T) {
	r := proxy.NewRegistry()
	c := container.New().Set("foo", &Foo{Name: "foo"})
	lookup, err := proxy.FormatContainer(c)
	require.NoError(t, err)
	require.NoError(t, r.AddService(fooProxy, "foo", lookup))

	got, err := r.Resolve(fooProxy)
	require.NoError(t, err)
	if diff := cmp.Diff(&Foo{Name: "foo"}, got); diff != "" {
		t.Errorf("first (-want +got):\n%s", diff)
	}

	// swap the service in the container
	c.Set("foo", func() any { return &Bar{Name: "bar"} })

	got, err = r.Resolve(fooProxy)
	require.NoError(t, err)
	if diff := cmp.Diff(&Bar{Name: "bar"}, got); diff != "" {
		t.Errorf("swapped (-want +got):\n%s", diff)
	}
}

func TestRegistryReplace(t *testing.T) {
	r := proxy.NewRegistry()
	foo := &Foo{}
	bar := &Bar{}
	require.NoError(t, r.AddInstance(fooProxy, foo))
	require.NoError(t, r.AddInstance(fooProxy, bar))

	got, err := r.Resolve(fooProxy)
	require.NoError(t, err)
	require.Same(t, bar, got)

	require.NoError(t, r.AddService(fooProxy, "foo", func(id string) any { return id }))
	got, err = r.Resolve(fooProxy)
	require.NoError(t, err)
	if diff := cmp.Diff("foo", got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRegistryNotRegistered(t *testing.T) {
	_, err := proxy.NewRegistry().Resolve(fooProxy)
	if !errors.Is(err, proxy.ErrNotRegistered) {
		t.Errorf("want ErrNotRegistered, got %v", err)
	}
}

func TestRegistryAddInvalid(t *testing.T) {
	r := proxy.NewRegistry()
	if err := r.AddInstance(fooProxy, nil); !errors.Is(err, input.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
	if err := r.AddService(fooProxy, "foo", nil); !errors.Is(err, input.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
	if diff := cmp.Diff([]string{}, r.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
