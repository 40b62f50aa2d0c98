// Package checker decides exhaustiveness and reachability for
// pattern-matching constructs over algebraic data types. Given a scrutinee
// type and an ordered list of match arms it reports whether the arms cover
// every value of the type, with concrete counterexamples when they do not,
// and which arms (or or-pattern alternatives) are redundant.
//
// The checker is a pure function per invocation: it owns the pattern arena
// it is given for the duration of the call, shares no mutable state across
// calls, and touches no external resources. Independent match expressions
// can be checked concurrently by using one Checker per goroutine.
package checker

import (
	"martianoff/matchcheck/matcherr"
)

// WitnessCap bounds the number of counterexamples in a report. When more
// distinct witnesses exist the report's Truncated flag is set.
const WitnessCap = 3

// Arm is one match arm: a normalized pattern plus the guard flag. Guards
// are opaque to the analysis and treated pessimistically: a guarded arm
// contributes no coverage to the arms after it.
type Arm struct {
	Pattern  PatternID
	HasGuard bool
}

// ArmReport is the per-arm slice of the report. UnreachableAlts lists the
// indices of top-level or-pattern alternatives already covered by earlier
// arms or earlier alternatives of the same arm; it is only populated for
// arms whose pattern is an or-pattern.
type ArmReport struct {
	Reachable       bool
	UnreachableAlts []int
}

// Report is the immutable analysis result handed to the diagnostic
// renderer. Witnesses are canonical renderings of concrete uncovered
// values, deduplicated, in deterministic traversal order, capped at
// WitnessCap. Inconclusive is set when the step budget ran out; the report
// then conservatively claims non-exhaustiveness without witnesses.
type Report struct {
	Exhaustive   bool
	Witnesses    []string
	Truncated    bool
	Inconclusive bool
	PerArm       []ArmReport
}

// Checker runs the analysis against one constructor catalog. A Checker is
// cheap; create one per goroutine for concurrent use.
type Checker struct {
	cat    *Catalog
	budget int
}

// New creates a Checker with the default step budget.
func New(cat *Catalog) *Checker {
	return NewWithBudget(cat, DefaultBudget)
}

// NewWithBudget creates a Checker with an explicit step budget. Exceeding
// the budget never fails the call; it degrades the report to inconclusive.
func NewWithBudget(cat *Catalog, budget int) *Checker {
	return &Checker{cat: cat, budget: budget}
}

// Check analyzes one match expression: scrutinee type plus arms in source
// order, whose patterns live in arena. It returns an error only for caller
// contract breaches (patterns inconsistent with the declared type); all
// analysis findings, including the budget fallback, are in the report.
func (c *Checker) Check(scrutinee Type, arena *Arena, arms []Arm) (*Report, error) {
	if err := validateArms(scrutinee, arena, arms); err != nil {
		return nil, err
	}

	m := newMatrix(arena, []Type{scrutinee})
	u := newUsefulness(c.cat, arena, c.budget, false)
	report := &Report{PerArm: make([]ArmReport, len(arms))}

	for k, arm := range arms {
		alts := arena.alternatives(arm.Pattern)
		mark := len(m.rows)
		reachable := false
		var unreachableAlts []int
		for i, alt := range alts {
			ok, _, err := u.isUseful(m, []PatternID{alt})
			if err != nil {
				return c.inconclusive(arms, err)
			}
			if ok {
				reachable = true
				m.pushRow([]PatternID{alt})
			} else if len(alts) > 1 {
				unreachableAlts = append(unreachableAlts, i)
			}
		}
		// A guard may reject at runtime, so the arm must not shadow
		// later arms: roll its rows back out of the matrix.
		if arm.HasGuard {
			m.rows = m.rows[:mark]
		}
		report.PerArm[k] = ArmReport{Reachable: reachable, UnreachableAlts: unreachableAlts}
	}

	u.collect = true
	useful, wits, err := u.isUseful(m, []PatternID{arena.Wildcard()})
	if err != nil {
		return c.inconclusive(arms, err)
	}
	report.Exhaustive = !useful
	if useful {
		report.Witnesses, report.Truncated = renderWitnesses(arena, scrutinee, wits)
	}
	return report, nil
}

// inconclusive is the budget fallback: assume non-exhaustive, flag the
// report, and claim nothing about reachability. Contract errors are not
// recoverable and propagate instead.
func (c *Checker) inconclusive(arms []Arm, err error) (*Report, error) {
	if _, ok := err.(*matcherr.BudgetError); !ok {
		return nil, err
	}
	report := &Report{
		Exhaustive:   false,
		Inconclusive: true,
		PerArm:       make([]ArmReport, len(arms)),
	}
	for i := range report.PerArm {
		report.PerArm[i] = ArmReport{Reachable: true}
	}
	return report, nil
}

// renderWitnesses produces the deduplicated, capped witness list in
// traversal order. Rendering is canonical, so byte-equality is value
// equality and re-running the checker yields byte-identical lists.
func renderWitnesses(arena *Arena, scrutinee Type, wits []witnessRow) ([]string, bool) {
	seen := make(map[string]bool, len(wits))
	var out []string
	truncated := false
	for _, w := range wits {
		text := arena.Render(scrutinee, w[0])
		if seen[text] {
			continue
		}
		seen[text] = true
		if len(out) == WitnessCap {
			truncated = true
			break
		}
		out = append(out, text)
	}
	return out, truncated
}
