// Package main provides the entry point for the extension forge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Chrome extension generator",
	Long:  "Forge turns a natural-language description into a complete, loadable Manifest V3 Chrome extension: manifest, popup, content script, service worker, and blocking rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
