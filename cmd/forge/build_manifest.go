package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/extension-forge/internal/manifest"
	"github.com/jonathan/extension-forge/internal/types"
)

var buildManifestCmd = &cobra.Command{
	Use:   "build-manifest [feature-set.json]",
	Short: "Build a manifest descriptor from a feature set artifact",
	Long:  `Reads a feature set JSON artifact (as produced by "forge analyze --json") from a file or stdin and prints the Manifest V3 descriptor it maps to. Useful for inspecting the manifest stage on its own.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuildManifest,
}

var buildManifestOutPath string

func init() {
	buildManifestCmd.Flags().StringVar(&buildManifestOutPath, "out", "", "Write the manifest JSON to a file instead of stdout")

	rootCmd.AddCommand(buildManifestCmd)
}

func runBuildManifest(cmd *cobra.Command, args []string) error {
	features, err := readFeatureSet(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	descriptor, err := manifest.Build(features)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	encoded = append(encoded, '\n')

	if buildManifestOutPath != "" {
		if err := os.WriteFile(buildManifestOutPath, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write manifest to %s: %w", buildManifestOutPath, err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(encoded)
	return err
}

// readFeatureSet decodes the feature set artifact from the named file, or
// from stdin when no argument was given.
func readFeatureSet(args []string, stdin io.Reader) (*types.FeatureSet, error) {
	var (
		data []byte
		err  error
	)
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read feature set file %s: %w", args[0], err)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read feature set from stdin: %w", err)
		}
	}

	var features types.FeatureSet
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, fmt.Errorf("failed to parse feature set JSON: %w", err)
	}
	return &features, nil
}
