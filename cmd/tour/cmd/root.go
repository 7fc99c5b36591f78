// Package cmd implements the tour command line: listing the lesson catalog
// and running lessons with file, environment and flag configuration.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set with -ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const envPrefix = "DEMOKIT"

// NewRootCommand creates the root command for the tour application.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tour",
		Short: "demokit tour - run the lesson catalog",
		Long: `tour lists and runs the demokit lessons.

Settings come from an optional YAML, TOML or JSON file (--config),
then DEMOKIT_* environment variables, then flags; later sources win.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (.yaml, .yml, .toml or .json)")
	flags.String("log-level", "", "diagnostic log level: debug, info, warn or error")
	flags.String("log-format", "", "diagnostic log format: text or json")
	flags.Float64("delay-scale", 0, "real seconds slept per simulated second (0 never sleeps)")

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), PrintVersion())
		},
	}
}

// PrintVersion returns the version line.
func PrintVersion() string {
	return fmt.Sprintf("demokit tour v%s (commit: %s, built on: %s)", Version, Commit, Date)
}
