package matcherr_test

import (
	"testing"

	"martianoff/matchcheck/matcherr"

	"github.com/stretchr/testify/assert"
)

func TestContractError(t *testing.T) {
	err := matcherr.NewContractError("constructor %q does not belong to type %q", "D", "Foo")
	assert.Equal(t, matcherr.TypeContract, err.Type())
	assert.Equal(t, -1, err.Arm)
	assert.Equal(t, `[ContractError] constructor "D" does not belong to type "Foo"`, err.Error())
}

func TestContractErrorAt(t *testing.T) {
	err := matcherr.NewContractErrorAt(2, "constructor arity mismatch: got %d, want %d", 1, 2)
	assert.Equal(t, matcherr.TypeContract, err.Type())
	assert.Equal(t, 2, err.Arm)
	assert.Equal(t, "[ContractError] arm 2: constructor arity mismatch: got 1, want 2", err.Error())
}

func TestBudgetError(t *testing.T) {
	err := matcherr.NewBudgetError(1000, "usefulness recursion aborted")
	assert.Equal(t, matcherr.TypeBudget, err.Type())
	assert.Equal(t, 1000, err.Steps)
	assert.Equal(t, "[BudgetError] analysis exceeded 1000 steps: usefulness recursion aborted", err.Error())
}

func TestMatchErrorInterface(t *testing.T) {
	var err matcherr.MatchError

	err = matcherr.NewContractError("bad input")
	assert.Equal(t, matcherr.TypeContract, err.Type())

	err = matcherr.NewBudgetError(1, "aborted")
	assert.Equal(t, matcherr.TypeBudget, err.Type())
}
