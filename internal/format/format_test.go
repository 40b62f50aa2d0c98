package format

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"martianoff/matchcheck/internal/checker"
)

func init() {
	color.NoColor = true
}

func TestRenderExhaustive(t *testing.T) {
	r := &Result{
		File: "option.yaml",
		Name: "full option",
		Report: &checker.Report{
			Exhaustive: true,
			PerArm:     []checker.ArmReport{{Reachable: true}, {Reachable: true}},
		},
	}

	out := Render(r)
	assert.Contains(t, out, "option.yaml (full option)")
	assert.Contains(t, out, "ok: match is exhaustive")
	assert.NotContains(t, out, "unreachable")
	assert.Equal(t, 0, Findings(r))
}

func TestRenderNonExhaustiveWithWitnesses(t *testing.T) {
	r := &Result{
		File: "foo.yaml",
		Report: &checker.Report{
			Exhaustive: false,
			Witnesses:  []string{"A(false)", "B(false)", "C(false)"},
			Truncated:  true,
			PerArm:     []checker.ArmReport{{Reachable: true}},
		},
	}

	out := Render(r)
	assert.Contains(t, out, "non-exhaustive: match is not exhaustive")
	assert.Contains(t, out, "uncovered: A(false)")
	assert.Contains(t, out, "uncovered: B(false)")
	assert.Contains(t, out, "uncovered: C(false)")
	assert.Contains(t, out, "... and more")
	assert.Equal(t, 1, Findings(r))
}

func TestRenderUnreachableArmsAndAlternatives(t *testing.T) {
	r := &Result{
		File: "ranges.yaml",
		Report: &checker.Report{
			Exhaustive: true,
			PerArm: []checker.ArmReport{
				{Reachable: true},
				{Reachable: true, UnreachableAlts: []int{1}},
				{Reachable: false},
			},
		},
	}

	out := Render(r)
	assert.Contains(t, out, "unreachable: arm 1 alternative 1 is unreachable")
	assert.Contains(t, out, "unreachable: arm 2 is unreachable")
	assert.Equal(t, 2, Findings(r))
}

func TestRenderInconclusive(t *testing.T) {
	r := &Result{
		File: "big.yaml",
		Report: &checker.Report{
			Exhaustive:   false,
			Inconclusive: true,
			PerArm:       []checker.ArmReport{{Reachable: true}},
		},
	}

	out := Render(r)
	assert.Contains(t, out, "inconclusive: analysis budget exhausted")
	assert.NotContains(t, out, "non-exhaustive")
	assert.Equal(t, 1, Findings(r))
}

func TestRenderAllSummary(t *testing.T) {
	clean := &Result{
		File:   "a.yaml",
		Report: &checker.Report{Exhaustive: true},
	}
	dirty := &Result{
		File: "b.yaml",
		Report: &checker.Report{
			Exhaustive: false,
			Witnesses:  []string{"false"},
		},
	}

	assert.Contains(t, RenderAll([]*Result{clean}), "no problems found")
	assert.Contains(t, RenderAll([]*Result{clean, dirty}), "1 problem found")
	assert.Contains(t, RenderAll([]*Result{dirty, dirty}), "2 problems found")
}
