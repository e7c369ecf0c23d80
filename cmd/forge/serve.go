package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/extension-forge/internal/config"
	"github.com/jonathan/extension-forge/internal/server"
)

var (
	servePort      int
	serveOutputDir string
	serveRulesPath string
	serveVerbose   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing prompts and generating extensions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to $PORT, then 8080)")
	serveCmd.Flags().StringVarP(&serveOutputDir, "output", "o", "", "Default directory for write requests")
	serveCmd.Flags().StringVar(&serveRulesPath, "rules", "", "Path to a YAML file overriding the built-in rule tables")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	flagCfg := config.Config{
		Port:      servePort,
		OutputDir: serveOutputDir,
		Rules:     serveRulesPath,
	}
	merged := flagCfg.MergeWithDefaults(config.FromEnv())
	if merged.Port == 0 {
		merged.Port = 8080
	}

	srv := server.New(server.Config{
		Port:      merged.Port,
		OutputDir: merged.OutputDir,
		RulesPath: merged.Rules,
		Verbose:   serveVerbose,
	})

	return srv.Start()
}
