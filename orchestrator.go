package metadoc

import (
	"context"

	"github.com/goliatone/go-metadoc/pkg/orchestrator"
)

// Result aliases orchestrator.Result for callers using the root package.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateMarkdown documents the objects named by selection ("all" or a comma
// separated list) found under basePath, writing one Markdown file per object
// into outputDir. It is the simplest entry point for callers that just want
// the default output.
func GenerateMarkdown(ctx context.Context, selection, basePath, outputDir string, options ...orchestrator.Option) (Result, error) {
	opts := append([]orchestrator.Option{orchestrator.WithBasePath(basePath)}, options...)
	gen := orchestrator.New(opts...)
	return gen.Generate(ctx, orchestrator.Request{
		Objects:   orchestrator.ParseSelection(selection),
		OutputDir: outputDir,
	})
}
