// statical loads proxy settings, resolves the names given as positional
// arguments and prints what each one resolves to.
//
//	statical -config app.star -service foo=bar Foo 'App\Models\Foo'
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"

	"github.com/stackb/statical/pkg/collections"
	"github.com/stackb/statical/pkg/config"
	"github.com/stackb/statical/pkg/container"
	"github.com/stackb/statical/pkg/host"
	"github.com/stackb/statical/pkg/logger"
	"github.com/stackb/statical/pkg/protobuf"
	"github.com/stackb/statical/pkg/statical"
)

const (
	logLevelEnv   = "STATICAL_LOG_LEVEL"
	configDirEnv  = "STATICAL_CONFIG_DIR"
	configGlobEnv = "STATICAL_CONFIG_GLOB"

	defaultConfigGlob = "**/*.{star,yaml,yml,json}"
)

type options struct {
	configFiles  collections.StringSlice
	configDir    string
	configGlob   string
	envFile      string
	services     collections.StringSlice
	namespacing  bool
	logLevel     string
	snapshotFile string
	dump         bool
	names        []string
}

// serviceValue is a container entry given on the command line.
type serviceValue struct {
	ID    string
	Value string
}

func (s *serviceValue) String() string {
	return s.Value
}

func main() {
	log.SetPrefix("statical: ")
	log.SetFlags(0) // don't print timestamps

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("statical", flag.ContinueOnError)

	fs.Var(&opts.configFiles, "config", "a config file (.star, .bzl, .yaml, .yml, .json); may be repeated")
	fs.StringVar(&opts.configDir, "config_dir", "", "a directory to discover config files in")
	fs.StringVar(&opts.configGlob, "config_glob", "", "the pattern config files in -config_dir must match (default "+defaultConfigGlob+")")
	fs.StringVar(&opts.envFile, "env_file", "", "a .env file with STATICAL_* defaults")
	fs.Var(&opts.services, "service", "a container entry as id=value; may be repeated")
	fs.BoolVar(&opts.namespacing, "namespacing", false, "enable the hook with namespace matching")
	fs.StringVar(&opts.logLevel, "log_level", "", "the log level (default info)")
	fs.StringVar(&opts.snapshotFile, "snapshot_file", "", "write the final state to this file (.json, .pbtext or binary); \"-\" prints it to stdout as JSON")
	fs.BoolVar(&opts.dump, "dump", false, "dump the final state to stdout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.names = fs.Args()

	return opts, nil
}

// applyEnv fills unset options from the environment, then from the env file.
func applyEnv(opts *options) error {
	fileEnv := map[string]string{}
	if opts.envFile != "" {
		var err error
		if fileEnv, err = godotenv.Read(opts.envFile); err != nil {
			return fmt.Errorf("reading env file: %w", err)
		}
	}
	getenv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fileEnv[key]
	}

	if opts.logLevel == "" {
		opts.logLevel = getenv(logLevelEnv)
	}
	if opts.configDir == "" {
		opts.configDir = getenv(configDirEnv)
	}
	if opts.configGlob == "" {
		opts.configGlob = getenv(configGlobEnv)
	}
	if opts.configGlob == "" {
		opts.configGlob = defaultConfigGlob
	}
	return nil
}

func run(opts *options, stdout, stderr io.Writer) error {
	if err := applyEnv(opts); err != nil {
		return err
	}

	l, err := logger.New(stderr, opts.logLevel)
	if err != nil {
		return err
	}

	filenames, err := configFilenames(opts)
	if err != nil {
		return err
	}
	cfg, err := config.LoadFiles(filenames...)
	if err != nil {
		return err
	}
	l.Debug().Strs("files", filenames).Msg("loaded config")

	c, err := newContainer(opts.services)
	if err != nil {
		return err
	}
	l.Debug().Strs("ids", c.IDs()).Msg("container ready")

	rt := host.NewRuntime(l)
	m, err := statical.New(l, rt, statical.WithContainer(c), statical.WithConfig(cfg))
	if err != nil {
		return err
	}
	if opts.namespacing {
		m.Enable(true)
	}

	for _, name := range opts.names {
		canonical, ok := rt.Lookup(name)
		if !ok {
			fmt.Fprintf(stdout, "%s: not found\n", name)
			continue
		}
		value, err := m.ProxyTarget(canonical)
		if err != nil {
			fmt.Fprintf(stdout, "%s -> %s (%v)\n", name, canonical, err)
			continue
		}
		fmt.Fprintf(stdout, "%s -> %s (%v)\n", name, canonical, value)
	}

	if opts.snapshotFile == "" && !opts.dump {
		return nil
	}
	snapshot, err := m.Snapshot()
	if err != nil {
		return err
	}
	switch opts.snapshotFile {
	case "":
	case "-":
		data, err := protobuf.StableJSON(snapshot)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, data)
	default:
		if err := protobuf.WriteFile(opts.snapshotFile, snapshot); err != nil {
			return err
		}
	}
	if opts.dump {
		dumper := spew.ConfigState{
			Indent:                  "  ",
			SortKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		dumper.Fdump(stdout, snapshot.AsMap())
	}
	return nil
}

func configFilenames(opts *options) ([]string, error) {
	filenames := append([]string{}, opts.configFiles...)
	if opts.configDir == "" {
		return filenames, nil
	}
	matches, err := config.Discover(os.DirFS(opts.configDir), opts.configGlob)
	if err != nil {
		return nil, err
	}
	for _, match := range matches {
		filenames = append(filenames, filepath.Join(opts.configDir, filepath.FromSlash(match)))
	}
	return filenames, nil
}

func newContainer(entries []string) (*container.Map, error) {
	c := container.New()
	for _, entry := range entries {
		id, value, ok := strings.Cut(entry, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("bad -service %q: want id=value", entry)
		}
		if c.Has(id) {
			return nil, fmt.Errorf("duplicate -service id %q", id)
		}
		c.Set(id, &serviceValue{ID: id, Value: value})
	}
	return c, nil
}
