package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"martianoff/matchcheck/internal/checker"
	"martianoff/matchcheck/internal/fixture"
	"martianoff/matchcheck/internal/format"
)

var (
	checkBudget  int
	checkNoColor bool
	checkQuiet   bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file.yaml ...]",
	Short: "Check match fixtures for exhaustiveness and reachability",
	Long: `Check one or more YAML match fixtures.

Each fixture describes a scrutinee type and a list of match arms. The
checker reports non-exhaustive matches together with example values no
arm covers, and flags arms and or-alternatives no value can reach.

The exit code is 0 when every match is exhaustive with all arms
reachable, and 1 otherwise.

Examples:
  matchcheck check option.yaml
  matchcheck check fixtures/*.yaml --budget 1000000
  matchcheck option.yaml                # Shorthand (same as check)`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().IntVarP(&checkBudget, "budget", "b", 0, "Analysis step budget (0 means the default)")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "Disable colored output")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Only set the exit code, print nothing")
}

func runCheck(cmd *cobra.Command, args []string) {
	if checkNoColor {
		color.NoColor = true
	}

	budget := checkBudget
	if budget <= 0 {
		budget = checker.DefaultBudget
	}
	chk := checker.NewWithBudget(checker.NewCatalog(), budget)

	results := make([]*format.Result, 0, len(args))
	for _, path := range args {
		f, err := fixture.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
		scrutinee, arena, arms, err := f.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
		report, err := chk.Check(scrutinee, arena, arms)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
		results = append(results, &format.Result{File: path, Name: f.Name, Report: report})
	}

	total := 0
	for _, r := range results {
		total += format.Findings(r)
	}
	if !checkQuiet {
		fmt.Print(format.RenderAll(results))
	}
	if total > 0 {
		os.Exit(1)
	}
}
