package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	metadoc "github.com/goliatone/go-metadoc"
	"github.com/goliatone/go-metadoc/internal/config"
	"github.com/goliatone/go-metadoc/internal/logging"
	"github.com/goliatone/go-metadoc/internal/logging/gologger"
	"github.com/goliatone/go-metadoc/internal/prompt"
	"github.com/goliatone/go-metadoc/pkg/interfaces"
	"github.com/goliatone/go-metadoc/pkg/metadata"
	"github.com/goliatone/go-metadoc/pkg/orchestrator"
	"github.com/goliatone/go-metadoc/pkg/render"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitAborted = 130
)

// newDriver builds the interactive prompt driver; tests replace it.
var newDriver = func() prompt.Driver {
	return prompt.NewSurveyDriver()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defaults := config.Defaults()

	flags := flag.NewFlagSet("metadoc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.String("objects", "", `objects to document: "all" or a comma separated list`)
	flags.String("output-dir", defaults.OutputDir, "directory that receives one document per object")
	flags.String("base-path", defaults.BasePath, "metadata root holding the objects/ tree")
	flags.Bool("debug", false, "log progress at debug level")
	flags.String("format", defaults.Format, "renderer to use (markdown, html, template)")
	flags.String("templates", "", "template directory for the template renderer")
	flags.Bool("strict", false, "abort when a descriptor is malformed")
	flags.Bool("sanitize", false, "strip HTML markup from table cells")
	flags.String("log-format", defaults.LogFormat, "log output format (console, json, pretty)")
	flags.Bool("interactive", false, "pick objects from the discovered list")
	configPath := flags.String("config", "", "optional YAML configuration file")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	cfg, err := resolveConfig(flags, *configPath)
	if err != nil {
		fmt.Fprintf(stderr, "metadoc: %v\n", err)
		return exitFailure
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  gologger.LevelFor(cfg.Debug),
		Format: cfg.LogFormat,
	})
	if err != nil {
		fmt.Fprintf(stderr, "metadoc: %v\n", err)
		return exitFailure
	}
	logger := logging.ComponentLogger(provider, logging.CLIComponent)
	logger.Debug("resolved inputs", "objects", cfg.Objects, "output_dir", cfg.OutputDir, "base_path", cfg.BasePath,
		"format", cfg.Format, "strict", cfg.Strict)

	orch := newOrchestrator(cfg, provider)

	selection := orchestrator.ParseSelection(cfg.Objects)
	if cfg.Interactive && selection.Empty() {
		selection, err = interactiveSelection(ctx, orch)
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(stderr, "metadoc: aborted")
			return exitAborted
		}
		if err != nil {
			logger.Error("object selection failed", "error", err)
			return exitFailure
		}
	}

	result, err := orch.Generate(ctx, orchestrator.Request{
		Objects:   selection,
		OutputDir: cfg.OutputDir,
		Renderer:  cfg.Format,
	})
	report(stdout, result, cfg.Debug)
	if err != nil {
		logger.Error("documentation run failed", "error", err)
		return exitFailure
	}
	return exitOK
}

// resolveConfig layers explicit flags over defaults, file and environment.
func resolveConfig(flags *flag.FlagSet, path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	var setErr error
	flags.Visit(func(f *flag.Flag) {
		if setErr != nil || f.Name == "config" {
			return
		}
		setErr = cfg.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return config.Config{}, setErr
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newOrchestrator(cfg config.Config, provider interfaces.LoggerProvider) *orchestrator.Orchestrator {
	resolver := metadoc.NewResolver(
		metadata.WithBasePath(cfg.BasePath),
		metadata.WithResolverLogger(logging.ComponentLogger(provider, logging.ResolverComponent)),
	)
	parser := metadoc.NewParser(
		metadata.WithParserBasePath(cfg.BasePath),
		metadata.WithParserLogger(logging.ComponentLogger(provider, logging.ParserComponent)),
	)

	options := []orchestrator.Option{
		orchestrator.WithResolver(resolver),
		orchestrator.WithParser(parser),
		orchestrator.WithLogger(logging.ComponentLogger(provider, logging.OrchestratorComponent)),
		orchestrator.WithStrict(cfg.Strict),
		orchestrator.WithTemplatesDir(cfg.Templates),
	}
	if cfg.Sanitize {
		options = append(options, orchestrator.WithSanitizer(render.StripMarkup))
	}
	return metadoc.NewOrchestrator(options...)
}

func interactiveSelection(ctx context.Context, orch *orchestrator.Orchestrator) (orchestrator.Selection, error) {
	objects, err := orch.Discover(ctx)
	if err != nil {
		return orchestrator.Selection{}, err
	}
	selected, err := prompt.SelectObjects(ctx, newDriver(), objects)
	if err != nil {
		return orchestrator.Selection{}, err
	}
	return orchestrator.Objects(selected...), nil
}

// report lists written documents. Objects without documentation are skipped
// silently unless debug is set.
func report(out io.Writer, result orchestrator.Result, debug bool) {
	for _, written := range result.Written {
		fmt.Fprintf(out, "wrote %s (%d fields, %d rules)\n", written.Path, written.Fields, written.Rules)
	}
	if !debug {
		return
	}
	for _, skipped := range result.Skipped {
		fmt.Fprintf(out, "skipped %s: no documentation found\n", skipped.Object)
	}
}
