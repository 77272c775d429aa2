package input

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckAlias(t *testing.T) {
	for name, tc := range map[string]struct {
		value   string
		want    string
		wantErr bool
	}{
		"degenerate": {
			wantErr: true,
		},
		"plain": {
			value: "Foo",
			want:  "Foo",
		},
		"wildcard": {
			value: "*",
			want:  "*",
		},
		"namespaced": {
			value:   `Foo\Bar`,
			wantErr: true,
		},
		"leading separator": {
			value:   `\Foo`,
			wantErr: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := CheckAlias(tc.value)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("want ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckNamespace(t *testing.T) {
	for name, tc := range map[string]struct {
		value   string
		wantErr bool
	}{
		"degenerate":         {wantErr: true},
		"single":             {value: "Bar"},
		"nested":             {value: `Bar\Baz`},
		"wildcard":           {value: "*"},
		"prefix":             {value: `Bar\*`},
		"leading separator":  {value: `\Bar`, wantErr: true},
		"trailing separator": {value: `Bar\`, wantErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := CheckNamespace(tc.value)
			if got := err != nil; got != tc.wantErr {
				t.Fatalf("wantErr %v, got %v", tc.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("want ErrInvalidArgument, got %v", err)
			}
		})
	}
}
