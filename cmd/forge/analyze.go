package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/extension-forge/internal/analysis"
	"github.com/jonathan/extension-forge/internal/observability"
	"github.com/jonathan/extension-forge/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [prompt]",
	Short: "Analyze a description and print the inferred feature set",
	Long:  `Runs the prompt analyzer on its own and prints the classified intents, extracted entities, inferred permissions, and the file roles the bundle would contain. The JSON artifact is checked against the feature set schema before it is emitted.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeRulesPath string
	analyzeJSON      bool
	analyzeOutPath   string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRulesPath, "rules", "", "Path to a YAML file overriding the built-in rule tables")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the feature set as JSON")
	analyzeCmd.Flags().StringVar(&analyzeOutPath, "out", "", "Write the feature set JSON to a file instead of stdout")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	var rules *analysis.RuleConfig
	if analyzeRulesPath != "" {
		var err error
		rules, err = analysis.LoadRules(analyzeRulesPath)
		if err != nil {
			return fmt.Errorf("failed to load rule tables: %w", err)
		}
	}

	features := analysis.Analyze(args[0], rules)

	if !analyzeJSON && analyzeOutPath == "" {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintFeatureSet(features)
		return nil
	}

	encoded, err := json.MarshalIndent(features, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode feature set: %w", err)
	}
	encoded = append(encoded, '\n')

	if err := validateFeatureSetJSON(encoded); err != nil {
		return err
	}

	if analyzeOutPath != "" {
		if err := os.WriteFile(analyzeOutPath, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write feature set to %s: %w", analyzeOutPath, err)
		}
		return nil
	}

	_, err = os.Stdout.Write(encoded)
	return err
}

// validateFeatureSetJSON checks the encoded artifact against the feature set
// schema. A missing schema file is tolerated so the binary still works when
// run outside the repository tree.
func validateFeatureSetJSON(encoded []byte) error {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "feature_set.schema.json"))
	if schemaPath == "" {
		fmt.Fprintln(os.Stderr, "Warning: feature set schema not found, schema validation skipped")
		return nil
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read feature set schema: %w", err)
	}
	if err := schemas.ValidateJSONString(string(schemaContent), string(encoded)); err != nil {
		return fmt.Errorf("feature set does not satisfy its schema: %w", err)
	}
	return nil
}
