package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/extension-forge/internal/output"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Verify a written extension bundle",
	Long:  `Checks a previously written bundle directory: the manifest must parse and satisfy its schema, every declared entry point must exist, and the popup markup must only reference files present in the bundle.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	problems, err := output.Verify(args[0])
	if err != nil {
		return err
	}

	if len(problems) == 0 {
		fmt.Printf("Bundle at %s looks good.\n", args[0])
		return nil
	}

	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	return fmt.Errorf("found %d problem(s) in %s", len(problems), args[0])
}
