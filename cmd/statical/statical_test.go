package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stackb/statical/pkg/protobuf"
	"github.com/stackb/statical/pkg/testutil"
)

// clearEnv unsets the STATICAL_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	for _, key := range []string{logLevelEnv, configDirEnv, configGlobEnv} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{
		"-config", "a.star",
		"-config", "b.yaml",
		"-service", "foo=bar",
		"-namespacing",
		"Foo", `App\Foo`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a.star", "b.yaml"}, []string(opts.configFiles)); diff != "" {
		t.Errorf("configFiles (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"foo=bar"}, []string(opts.services)); diff != "" {
		t.Errorf("services (-want +got):\n%s", diff)
	}
	if !opts.namespacing {
		t.Error("want namespacing")
	}
	if diff := cmp.Diff([]string{"Foo", `App\Foo`}, opts.names); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestRun(t *testing.T) {
	for name, tc := range map[string]struct {
		files   []testutil.FileSpec
		args    func(dir string) []string
		want    string
		wantErr string
	}{
		"not found": {
			args: func(dir string) []string { return []string{"Foo"} },
			want: "Foo: not found\n",
		},
		"config file": {
			files: []testutil.FileSpec{{
				Path: "app.star",
				Content: `
instances = {"Foo": "App\\FooProxy"}
services = {"Bar": ["App\\BarProxy", "bar.id"]}
boot = "enable"
`,
			}},
			args: func(dir string) []string {
				return []string{
					"-config", filepath.Join(dir, "app.star"),
					"-service", "foo=a foo",
					"-service", "bar.id=a bar",
					"Foo", "Bar", "Baz",
				}
			},
			want: "Foo -> App\\FooProxy (a foo)\nBar -> App\\BarProxy (a bar)\nBaz: not found\n",
		},
		"config dir with namespacing": {
			files: []testutil.FileSpec{
				{Path: "conf/a.yaml", Content: "instances:\n  Foo: App\\FooProxy\n"},
				{Path: "conf/b.star", Content: `namespaces = {"Foo": "App\\*"}`},
				{Path: "conf/README.md", Content: "ignored"},
			},
			args: func(dir string) []string {
				return []string{
					"-config_dir", filepath.Join(dir, "conf"),
					"-service", "foo=x",
					"-namespacing",
					`App\Http\Foo`, `Lib\Foo`,
				}
			},
			want: "App\\Http\\Foo -> App\\FooProxy (x)\nLib\\Foo: not found\n",
		},
		"env file log level": {
			files: []testutil.FileSpec{{Path: ".env", Content: "STATICAL_LOG_LEVEL=loud\n"}},
			args: func(dir string) []string {
				return []string{"-env_file", filepath.Join(dir, ".env")}
			},
			wantErr: `bad log level "loud"`,
		},
		"missing container entry": {
			files: []testutil.FileSpec{{Path: "app.star", Content: `instances = {"Foo": "App\\FooProxy"}`}},
			args: func(dir string) []string {
				return []string{"-config", filepath.Join(dir, "app.star")}
			},
			wantErr: "invalid argument",
		},
		"duplicate service flag": {
			args: func(dir string) []string {
				return []string{"-service", "foo=a", "-service", "foo=b"}
			},
			wantErr: `duplicate -service id "foo"`,
		},
		"snapshot to stdout": {
			args: func(dir string) []string {
				return []string{"-snapshot_file", "-"}
			},
			want: `{
 "aliases": {},
 "container": true,
 "hook": {
  "last": false,
  "namespacing": false,
  "registered": false
 },
 "namespaces": {},
 "targets": {}
}
`,
		},
		"bad service flag": {
			args: func(dir string) []string {
				return []string{"-service", "novalue"}
			},
			wantErr: `bad -service "novalue"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			testutil.MustWriteTestFiles(t, dir, tc.files)

			opts, err := parseFlags(tc.args(dir))
			if err != nil {
				t.Fatal(err)
			}
			var stdout, stderr bytes.Buffer
			err = run(opts, &stdout, &stderr)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, stdout.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunSnapshot(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	snapshotFile := filepath.Join(dir, "state.json")

	opts, err := parseFlags([]string{
		"-service", "statical=unused",
		"-snapshot_file", snapshotFile,
		"-dump",
	})
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run(opts, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	var got structpb.Struct
	if err := protobuf.ReadFile(snapshotFile, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"aliases":    map[string]any{},
		"namespaces": map[string]any{},
		"targets":    map[string]any{},
		"hook": map[string]any{
			"registered":  false,
			"last":        false,
			"namespacing": false,
		},
		"container": true,
	}
	if diff := cmp.Diff(want, got.AsMap()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !strings.Contains(stdout.String(), `"registered"`) {
		t.Errorf("dump output missing hook state: %s", stdout.String())
	}
}
