package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devcrew",
	Short: "Multi-agent development workflow orchestrator",
	Long: `Devcrew coordinates a crew of specialized development agents through
workflow templates. It materializes workflows into dependency-ordered task
chains, tracks completion, and tells each agent what to work on next.

With no arguments, starts the HTTP API server.

Core capabilities:
- Materializes workflows from built-in or custom templates
- Orders eligible tasks by priority and age
- Guarantees exactly-once task completion under concurrent callers
- Aggregates per-workflow and system-wide progress`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
