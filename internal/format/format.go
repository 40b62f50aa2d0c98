// Package format renders analysis reports for terminal output.
package format

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"martianoff/matchcheck/internal/checker"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	armStyle     = color.New(color.FgHiBlue, color.Bold)
	witnessStyle = color.New(color.FgWhite)
)

// Result pairs a report with the fixture it came from.
type Result struct {
	File   string
	Name   string
	Report *checker.Report
}

// Findings counts the problems a result carries: one for a non-exhaustive
// match plus one per unreachable arm or alternative. An inconclusive
// report counts as a single finding.
func Findings(r *Result) int {
	if r.Report.Inconclusive {
		return 1
	}
	n := 0
	if !r.Report.Exhaustive {
		n++
	}
	for _, arm := range r.Report.PerArm {
		if !arm.Reachable {
			n++
			continue
		}
		n += len(arm.UnreachableAlts)
	}
	return n
}

// Render formats one result as a human-readable block.
func Render(r *Result) string {
	var b strings.Builder

	header := r.File
	if r.Name != "" {
		header = fmt.Sprintf("%s (%s)", r.File, r.Name)
	}
	b.WriteString(fileStyle.Sprint(header))
	b.WriteString("\n")

	rep := r.Report
	switch {
	case rep.Inconclusive:
		b.WriteString(fmt.Sprintf("  %s analysis budget exhausted, result inconclusive\n",
			warningStyle.Sprint("inconclusive:")))
	case rep.Exhaustive:
		b.WriteString(fmt.Sprintf("  %s match is exhaustive\n", okStyle.Sprint("ok:")))
	default:
		b.WriteString(fmt.Sprintf("  %s match is not exhaustive\n",
			errorStyle.Sprint("non-exhaustive:")))
		for _, w := range rep.Witnesses {
			b.WriteString(fmt.Sprintf("    uncovered: %s\n", witnessStyle.Sprint(w)))
		}
		if rep.Truncated {
			b.WriteString("    ... and more\n")
		}
	}

	for i, arm := range rep.PerArm {
		if !arm.Reachable {
			b.WriteString(fmt.Sprintf("  %s %s is unreachable\n",
				warningStyle.Sprint("unreachable:"), armStyle.Sprintf("arm %d", i)))
			continue
		}
		for _, alt := range arm.UnreachableAlts {
			b.WriteString(fmt.Sprintf("  %s %s is unreachable\n",
				warningStyle.Sprint("unreachable:"), armStyle.Sprintf("arm %d alternative %d", i, alt)))
		}
	}

	return b.String()
}

// RenderAll formats a batch of results followed by a one-line summary.
func RenderAll(results []*Result) string {
	var b strings.Builder
	total := 0
	for _, r := range results {
		b.WriteString(Render(r))
		b.WriteString("\n")
		total += Findings(r)
	}
	switch total {
	case 0:
		b.WriteString(okStyle.Sprint("no problems found"))
	case 1:
		b.WriteString(errorStyle.Sprint("1 problem found"))
	default:
		b.WriteString(errorStyle.Sprintf("%d problems found", total))
	}
	b.WriteString("\n")
	return b.String()
}
