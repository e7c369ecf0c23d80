// Package pipeline provides the high-level orchestration of the extension
// generation process: analyze, plan, generate, materialize.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/extension-forge/internal/analysis"
	"github.com/jonathan/extension-forge/internal/codegen"
	"github.com/jonathan/extension-forge/internal/manifest"
	"github.com/jonathan/extension-forge/internal/observability"
	"github.com/jonathan/extension-forge/internal/output"
	"github.com/jonathan/extension-forge/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names emitted as progress events
const (
	StepAnalyze  = "analyze"
	StepManifest = "manifest"
	StepGenerate = "generate"
	StepWrite    = "write"
	StepVerify   = "verify"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Prompt     string
	TargetDir  string
	RulesPath  string
	DryRun     bool
	SkipVerify bool
	Verbose    bool
	OnProgress ProgressCallback
}

// Result holds every artifact the pipeline produced. Report is nil for dry
// runs; Problems is nil when verification was skipped or found nothing.
type Result struct {
	Features *types.FeatureSet      `json:"features"`
	Bundle   *types.ExtensionBundle `json:"bundle"`
	Report   *types.WriteReport     `json:"report,omitempty"`
	Problems []output.Problem       `json:"problems,omitempty"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// Run executes the full generation pipeline for a single prompt. Each stage
// consumes only the previous stage's output; nothing is retried or looped.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)

	var rules *analysis.RuleConfig
	if opts.RulesPath != "" {
		var err error
		rules, err = analysis.LoadRules(opts.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("loading rule tables failed: %w", err)
		}
		if opts.Verbose {
			fmt.Printf("[VERBOSE] Loaded rule overrides from %s\n", opts.RulesPath)
		}
	}

	fmt.Printf("Step 1/4: Analyzing prompt...\n")
	features := analysis.Analyze(opts.Prompt, rules)
	if opts.Verbose {
		printer.PrintFeatureSet(features)
	}
	emitProgress(&opts, StepAnalyze,
		fmt.Sprintf("Classified %d intent(s), inferred %d permission(s)", len(features.Intents), len(features.Permissions)),
		features)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Printf("Step 2/4: Building manifest...\n")
	descriptor, err := manifest.Build(features)
	if err != nil {
		return nil, fmt.Errorf("manifest construction failed: %w", err)
	}
	emitProgress(&opts, StepManifest,
		fmt.Sprintf("Built manifest for %q", descriptor.Name), descriptor)

	fmt.Printf("Step 3/4: Generating extension files...\n")
	bundle, err := codegen.Generate(features, descriptor)
	if err != nil {
		return nil, fmt.Errorf("code generation failed: %w", err)
	}
	emitProgress(&opts, StepGenerate,
		fmt.Sprintf("Generated %d file(s)", len(bundle.Files)), bundle.FilePaths())

	result := &Result{
		Features: features,
		Bundle:   bundle,
	}

	if opts.DryRun {
		fmt.Printf("Step 4/4: Dry run, skipping write.\n")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Printf("Step 4/4: Writing bundle to %s...\n", opts.TargetDir)
	report, err := output.Write(bundle, opts.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("writing bundle failed: %w", err)
	}
	result.Report = report
	if opts.Verbose {
		printer.PrintWriteReport(report)
	}
	emitProgress(&opts, StepWrite,
		fmt.Sprintf("Wrote %d file(s) to %s", len(report.FilesWritten), report.TargetDir), report)

	if !opts.SkipVerify {
		problems, err := output.Verify(report.TargetDir)
		if err != nil {
			return nil, fmt.Errorf("verifying bundle failed: %w", err)
		}
		result.Problems = problems
		if len(problems) > 0 {
			fmt.Printf("Verification found %d problem(s):\n", len(problems))
			for _, p := range problems {
				fmt.Printf("  - %s\n", p)
			}
		}
		emitProgress(&opts, StepVerify,
			fmt.Sprintf("Verification finished with %d problem(s)", len(problems)), problems)
	}

	fmt.Printf("Done! Extension written to %s\n", report.TargetDir)
	return result, nil
}
