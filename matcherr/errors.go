package matcherr

import (
	"fmt"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeContract ErrorType = "ContractError"
	TypeBudget   ErrorType = "BudgetError"
)

// MatchError is the interface for all matchcheck-related errors.
type MatchError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for matchcheck errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// ContractError reports malformed checker input: a constructor that does not
// belong to the declared type, an arity mismatch, a range outside the column
// domain, or a non-normalized pattern. It is a defect in the caller, not a
// user diagnostic.
type ContractError struct {
	BaseError
	Arm int // arm index the offending pattern came from, -1 if unknown
}

func (e *ContractError) Error() string {
	if e.Arm >= 0 {
		return fmt.Sprintf("[%s] arm %d: %s", e.ErrType, e.Arm, e.Msg)
	}
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

// BudgetError reports that the analysis step budget was exhausted before the
// decision procedure terminated. Callers of the checker never see it: Check
// converts it into a conservative "inconclusive" report.
type BudgetError struct {
	BaseError
	Steps int // the budget that was exceeded
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("[%s] analysis exceeded %d steps: %s", e.ErrType, e.Steps, e.Msg)
}

// NewContractError creates a new ContractError without an arm position.
func NewContractError(format string, args ...any) *ContractError {
	return &ContractError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf(format, args...),
			ErrType: TypeContract,
		},
		Arm: -1,
	}
}

// NewContractErrorAt creates a ContractError attributed to an arm index.
func NewContractErrorAt(arm int, format string, args ...any) *ContractError {
	return &ContractError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf(format, args...),
			ErrType: TypeContract,
		},
		Arm: arm,
	}
}

// NewBudgetError creates a new BudgetError for the given step budget.
func NewBudgetError(steps int, msg string) *BudgetError {
	return &BudgetError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeBudget,
		},
		Steps: steps,
	}
}
