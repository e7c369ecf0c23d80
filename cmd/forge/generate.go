package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/extension-forge/internal/config"
	"github.com/jonathan/extension-forge/internal/pipeline"
)

const defaultOutputDir = "generated_extension"

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a complete extension from a natural-language description",
	Long: `Runs the full generation pipeline: analysis -> manifest -> code generation -> output.

The description can be passed as an argument; without one the command asks for it on stdin.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	genConfigPath string
	genOutputDir  string
	genRulesPath  string
	genDryRun     bool
	genSkipVerify bool
	genVerbose    bool
)

func init() {
	// Config file flag (processed first)
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCmd.Flags().StringVarP(&genOutputDir, "output", "o", "", "Directory to write the extension into")
	generateCmd.Flags().StringVar(&genRulesPath, "rules", "", "Path to a YAML file overriding the built-in rule tables")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Run the pipeline without writing anything to disk")
	generateCmd.Flags().BoolVar(&genSkipVerify, "skip-verify", false, "Skip post-write bundle verification")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	prompt, err := resolvePrompt(args, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// Load config file if provided, then merge flag values over it
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = *loadedCfg
	}

	flagCfg := config.Config{
		OutputDir: genOutputDir,
		Rules:     genRulesPath,
	}
	merged := flagCfg.MergeWithDefaults(cfg)
	merged = merged.MergeWithDefaults(config.FromEnv())

	if merged.OutputDir == "" {
		merged.OutputDir = defaultOutputDir
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Prompt:     prompt,
		TargetDir:  merged.OutputDir,
		RulesPath:  merged.Rules,
		DryRun:     genDryRun,
		SkipVerify: genSkipVerify,
		Verbose:    genVerbose || cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if genDryRun {
		fmt.Printf("Dry run complete: %d file(s) would be written.\n", len(result.Bundle.Files)+1)
	}

	return nil
}

// resolvePrompt returns the description from args, or asks for one on stdin
// when none was given. Empty input is allowed and yields the default popup.
func resolvePrompt(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	fmt.Fprint(out, "Describe the extension you want: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read prompt: %w", err)
	}
	return strings.TrimSpace(line), nil
}
