// Package commands provides the CLI commands for the matchcheck tool.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchcheck [file.yaml]",
	Short: "Exhaustiveness and reachability checker for match expressions",
	Long: `matchcheck analyzes match expressions described in YAML fixtures and
reports whether each match is exhaustive, which arms are unreachable,
and example values the arms fail to cover.

Usage:
  matchcheck file.yaml            Check a fixture (shorthand)
  matchcheck check a.yaml b.yaml  Check fixtures explicitly
  matchcheck version              Print version`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Run check by default if a .yaml file is provided as argument
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && (strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml")) {
			runCheck(cmd, args)
			return nil
		}

		if len(args) == 0 {
			return cmd.Help()
		}

		return fmt.Errorf("unknown command %q for \"matchcheck\"\nRun 'matchcheck --help' for usage", args[0])
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Mirror check flags on the root for the shorthand form
	rootCmd.Flags().IntVarP(&checkBudget, "budget", "b", 0, "Analysis step budget (0 means the default)")
	rootCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Only set the exit code, print nothing")
}
