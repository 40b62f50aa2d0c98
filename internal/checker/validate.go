package checker

import (
	"martianoff/matchcheck/matcherr"
)

// validateArms checks the caller contract: every arm pattern must be
// consistent with the declared scrutinee type. A violation is a defect in
// the checker's caller, surfaced as a ContractError and never as a user
// diagnostic.
func validateArms(scrutinee Type, a *Arena, arms []Arm) error {
	for k, arm := range arms {
		if err := validatePattern(scrutinee, a, arm.Pattern, false); err != nil {
			if ce, ok := err.(*matcherr.ContractError); ok {
				return matcherr.NewContractErrorAt(k, "%s", ce.Msg)
			}
			return err
		}
	}
	return nil
}

func validatePattern(t Type, a *Arena, id PatternID, insideOr bool) error {
	n := a.node(id)
	switch n.kind {
	case PatWildcard:
		return nil

	case PatBinding:
		return validatePattern(t, a, n.subs[0], insideOr)

	case PatOr:
		if insideOr {
			return matcherr.NewContractError("or-pattern nests directly inside another or-pattern")
		}
		if len(n.subs) == 0 {
			return matcherr.NewContractError("or-pattern has no alternatives")
		}
		for _, alt := range n.subs {
			if err := validatePattern(t, a, alt, true); err != nil {
				return err
			}
		}
		return nil

	case PatRange:
		ty, ok := t.(*IntType)
		if !ok {
			return matcherr.NewContractError("range pattern against non-integer type %s", t)
		}
		if n.lo > n.hi {
			return matcherr.NewContractError("range %d..=%d has inverted bounds", n.lo, n.hi)
		}
		if n.lo < ty.Lo || n.hi > ty.Hi {
			return matcherr.NewContractError("range %d..=%d outside domain %d..=%d", n.lo, n.hi, ty.Lo, ty.Hi)
		}
		return nil

	case PatCtor:
		return validateCtor(t, a, n)
	}
	panic("unknown pattern kind")
}

func validateCtor(t Type, a *Arena, n *patternNode) error {
	switch ty := t.(type) {
	case *BoolType:
		if n.ctor.Kind != CtorBool {
			return matcherr.NewContractError("constructor %d does not belong to bool", n.ctor.Kind)
		}
		if len(n.subs) != 0 {
			return matcherr.NewContractError("bool constructor takes no subpatterns, got %d", len(n.subs))
		}
		return nil

	case *EnumType:
		if n.ctor.Kind != CtorVariant || n.ctor.Index < 0 || n.ctor.Index >= len(ty.Variants) {
			return matcherr.NewContractError("constructor does not belong to enum %s", ty.Name)
		}
		v := ty.Variants[n.ctor.Index]
		if len(n.subs) != len(v.Fields) {
			return matcherr.NewContractError("variant %s has %d fields, pattern has %d", v.Name, len(v.Fields), len(n.subs))
		}
		return validateFields(v.Fields, a, n.subs)

	case *TupleType:
		if n.ctor.Kind != CtorSingle || len(n.subs) != len(ty.Elems) {
			return matcherr.NewContractError("tuple %s has arity %d, pattern has %d", ty, len(ty.Elems), len(n.subs))
		}
		return validateFields(ty.Elems, a, n.subs)

	case *StructType:
		if n.ctor.Kind != CtorSingle || len(n.subs) != len(ty.Fields) {
			return matcherr.NewContractError("struct %s has %d fields, pattern has %d", ty.Name, len(ty.Fields), len(n.subs))
		}
		return validateFields(ty.Fields, a, n.subs)

	case *SliceType:
		if n.ctor.Kind != CtorSlice || n.ctor.Len != len(n.subs) {
			return matcherr.NewContractError("slice pattern length %d does not match %d subpatterns", n.ctor.Len, len(n.subs))
		}
		for _, sub := range n.subs {
			if err := validatePattern(ty.Elem, a, sub, false); err != nil {
				return err
			}
		}
		return nil

	case *IntType:
		return matcherr.NewContractError("integer patterns must be ranges, got constructor kind %d", n.ctor.Kind)
	}
	return matcherr.NewContractError("unknown type %T", t)
}

func validateFields(types []Type, a *Arena, subs []PatternID) error {
	for i, sub := range subs {
		if err := validatePattern(types[i], a, sub, false); err != nil {
			return err
		}
	}
	return nil
}
