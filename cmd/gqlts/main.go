// Command gqlts generates TypeScript type and resolver declarations
// from a GraphQL schema, supplied either as SDL files, a stored
// introspection result, or a live endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gqlts/gqlts"
	"github.com/gqlts/gqlts/compiler/gen"
	"github.com/gqlts/gqlts/compiler/load"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gqlts:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	schemas     []string
	endpoint    string
	out         string
	resolverOut string
	prefix      string
	contextType string
	scalars     []string
	merge       bool
	global      bool
	legacyEnums bool
	watch       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "gqlts",
		Short:         "Generate TypeScript declarations from a GraphQL schema",
		Version:       gqlts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Run a generation pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, logger.Sugar())
		},
	}
	f := generate.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to gqlts.yml (default: ./gqlts.yml when present)")
	f.StringArrayVarP(&opts.schemas, "schema", "s", nil, "schema file (SDL, or .json introspection result); repeatable")
	f.StringVarP(&opts.endpoint, "endpoint", "e", "", "GraphQL endpoint to introspect")
	f.StringVarP(&opts.out, "out", "o", "", "output file (default: stdout)")
	f.StringVar(&opts.resolverOut, "resolver-out", "", "write resolver declarations to a separate file")
	f.StringVarP(&opts.prefix, "prefix", "p", "", "prefix for generated type names")
	f.StringVar(&opts.contextType, "context-type", "", "resolver context type")
	f.StringArrayVar(&opts.scalars, "scalar", nil, "custom scalar mapping name=tsType; repeatable")
	f.BoolVar(&opts.merge, "merge-inherited", false, "suppress fields inherited from interfaces")
	f.BoolVar(&opts.global, "global", false, "emit global-scope declarations")
	f.BoolVar(&opts.legacyEnums, "legacy-enums", false, "emit enums as string-literal unions")
	f.BoolVarP(&opts.watch, "watch", "w", false, "regenerate when schema files change")
	root.AddCommand(generate)
	return root
}

func run(ctx context.Context, opts *options, logger *zap.SugaredLogger) error {
	fileCfg, err := projectConfig(opts.configPath)
	if err != nil {
		return err
	}
	merged, err := mergeConfig(fileCfg, opts)
	if err != nil {
		return err
	}
	pass := func() error { return generateOnce(ctx, merged, logger) }
	if err := pass(); err != nil {
		if !opts.watch {
			return err
		}
		logger.Errorw("generation failed", "error", err)
	}
	if opts.watch {
		if len(merged.Schema) == 0 {
			return fmt.Errorf("--watch requires schema files")
		}
		return watch(ctx, merged.Schema, logger, pass)
	}
	return nil
}

// projectConfig loads the named config file, or gqlts.yml from the
// working directory when it exists.
func projectConfig(path string) (*load.Config, error) {
	if path == "" {
		if _, err := os.Stat("gqlts.yml"); err != nil {
			return &load.Config{}, nil
		}
		path = "gqlts.yml"
	}
	return load.ConfigFile(path)
}

// mergeConfig overlays command-line flags on top of the project file.
func mergeConfig(cfg *load.Config, opts *options) (*load.Config, error) {
	out := *cfg
	if len(opts.schemas) > 0 {
		out.Schema = opts.schemas
	}
	if opts.endpoint != "" {
		out.Endpoint = opts.endpoint
	}
	if opts.out != "" {
		out.Output = opts.out
	}
	if opts.resolverOut != "" {
		out.ResolverOutput = opts.resolverOut
	}
	if opts.prefix != "" {
		out.Prefix = opts.prefix
	}
	if opts.contextType != "" {
		out.ContextType = opts.contextType
	}
	if opts.merge {
		out.MergeInherited = true
	}
	if opts.global {
		out.Global = true
	}
	if opts.legacyEnums {
		out.LegacyEnums = true
	}
	if len(opts.scalars) > 0 {
		scalars := make(map[string]string, len(opts.scalars))
		for name, ts := range cfg.Scalars {
			scalars[name] = ts
		}
		for _, s := range opts.scalars {
			name, ts, ok := strings.Cut(s, "=")
			if !ok || name == "" || ts == "" {
				return nil, fmt.Errorf("invalid --scalar %q: expected name=tsType", s)
			}
			scalars[name] = ts
		}
		out.Scalars = scalars
	}
	return &out, nil
}

func generateOnce(ctx context.Context, cfg *load.Config, logger *zap.SugaredLogger) error {
	graph, err := loadGraph(ctx, cfg)
	if err != nil {
		return err
	}
	genCfg, err := gen.NewConfig(cfg.Options()...)
	if err != nil {
		return err
	}
	out, err := gen.Generate(graph, genCfg)
	if err != nil {
		return err
	}
	if err := writeOutput(out, cfg.Output, cfg.ResolverOutput); err != nil {
		return err
	}
	switch {
	case cfg.Output == "":
	case cfg.ResolverOutput != "":
		logger.Infow("generated", "types", cfg.Output, "resolvers", cfg.ResolverOutput)
	default:
		logger.Infow("generated", "out", cfg.Output)
	}
	return nil
}

// loadGraph obtains the type graph from whichever input is configured.
func loadGraph(ctx context.Context, cfg *load.Config) (*gen.Graph, error) {
	switch {
	case cfg.Endpoint != "":
		return load.FetchIntrospection(ctx, nil, cfg.Endpoint)
	case len(cfg.Schema) == 1 && strings.HasSuffix(cfg.Schema[0], ".json"):
		return load.IntrospectionFile(cfg.Schema[0])
	case len(cfg.Schema) > 0:
		return load.SDLFile(cfg.Schema...)
	default:
		return nil, fmt.Errorf("no schema input: set schema files or an endpoint")
	}
}

// writeOutput writes the artifacts, splitting resolver declarations
// into their own file when requested. An empty output path prints the
// concatenated artifact to stdout.
func writeOutput(out *gen.Output, typesPath, resolversPath string) error {
	if typesPath == "" {
		_, err := fmt.Print(out.Render())
		return err
	}
	if resolversPath == "" {
		return writeFile(typesPath, out.Render())
	}
	types, resolvers := out.RenderSplit()
	var eg errgroup.Group
	eg.Go(func() error { return writeFile(typesPath, types) })
	eg.Go(func() error { return writeFile(resolversPath, resolvers) })
	return eg.Wait()
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
