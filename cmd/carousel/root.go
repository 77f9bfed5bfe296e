package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version string

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Terminal slide deck carousel",
	Long: `carousel - Present a YAML or JSON slide deck in the terminal.

Slides change instantly and come into focus after a short reveal delay.
Navigate with the arrow keys or by clicking the screen edges.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
