package checker

import (
	"fmt"

	"martianoff/matchcheck/matcherr"
)

// CtorKind is the closed set of constructor shapes a column can split on.
type CtorKind uint8

const (
	CtorSingle  CtorKind = iota // the sole constructor of a tuple or struct
	CtorVariant                 // enum variant, identified by Index
	CtorBool                    // boolean literal, identified by B
	CtorRange                   // integer sub-range [Lo, Hi]
	CtorSlice                   // slice of exact length Len
)

// Ctor identifies one constructor of a column type. It is a small
// comparable value; equality is identity within a column.
type Ctor struct {
	Kind   CtorKind
	Index  int   // CtorVariant
	B      bool  // CtorBool
	Lo, Hi int64 // CtorRange
	Len    int   // CtorSlice
}

// covers reports whether a value built by sub is also built by c. Used when
// specializing: a row headed by c keeps matching after the column is
// narrowed to sub. Both constructors belong to the same column type and,
// for ranges, sub is a boundary-split piece, so partial overlap cannot
// occur.
func (c Ctor) covers(sub Ctor) bool {
	if c.Kind != sub.Kind {
		return false
	}
	switch c.Kind {
	case CtorSingle:
		return true
	case CtorVariant:
		return c.Index == sub.Index
	case CtorBool:
		return c.B == sub.B
	case CtorRange:
		return c.Lo <= sub.Lo && sub.Hi <= c.Hi
	case CtorSlice:
		return c.Len == sub.Len
	}
	panic(fmt.Sprintf("unknown constructor kind %d", uint8(c.Kind)))
}

// ColumnSplit is the outcome of splitting one matrix column: the
// constructors that must each be specialized (Present, in declaration
// order), and the concrete constructors standing behind the synthetic
// missing constructor (Missing, also in declaration order; empty when the
// present constructors exhaust the column type). The missing constructor is
// never specialized further; it exists for the default-matrix branch and
// for witness construction.
type ColumnSplit struct {
	Present []Ctor
	Missing []Ctor
}

// Catalog enumerates constructors per type and memoizes the finite ones.
// It is an explicit collaborator passed into every checker call rather
// than ambient global state; one catalog may serve many invocations but is
// not safe for concurrent use.
type Catalog struct {
	finite map[Type][]Ctor
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{finite: make(map[Type][]Ctor)}
}

// Constructors enumerates the full constructor set of a finite-domain type
// in declaration order. Integer and slice types have no finite enumeration
// and are a caller contract breach here; columns of those types go through
// SplitColumn instead.
func (c *Catalog) Constructors(t Type) ([]Ctor, error) {
	if ctors, ok := c.finite[t]; ok {
		return ctors, nil
	}
	var ctors []Ctor
	switch ty := t.(type) {
	case *BoolType:
		ctors = []Ctor{{Kind: CtorBool, B: false}, {Kind: CtorBool, B: true}}
	case *EnumType:
		ctors = make([]Ctor, len(ty.Variants))
		for i := range ty.Variants {
			ctors[i] = Ctor{Kind: CtorVariant, Index: i}
		}
	case *TupleType, *StructType:
		ctors = []Ctor{{Kind: CtorSingle}}
	case *IntType, *SliceType:
		return nil, matcherr.NewContractError("type %s has no finite constructor enumeration", t)
	default:
		return nil, matcherr.NewContractError("unknown type %T", t)
	}
	c.finite[t] = ctors
	return ctors, nil
}

// SplitColumn determines the constructors a wildcard in this column must be
// specialized against: every constructor appearing among the row heads,
// plus the concrete complement when those do not exhaust the type.
func (c *Catalog) SplitColumn(t Type, heads []Ctor) (ColumnSplit, error) {
	switch ty := t.(type) {
	case *BoolType, *EnumType, *TupleType, *StructType:
		return c.splitFinite(t, heads)
	case *IntType:
		return splitInt(ty, heads), nil
	case *SliceType:
		return splitSlice(heads), nil
	}
	return ColumnSplit{}, matcherr.NewContractError("unknown type %T", t)
}

func (c *Catalog) splitFinite(t Type, heads []Ctor) (ColumnSplit, error) {
	all, err := c.Constructors(t)
	if err != nil {
		return ColumnSplit{}, err
	}
	seen := make(map[Ctor]bool, len(heads))
	for _, h := range heads {
		seen[h] = true
	}
	var split ColumnSplit
	for _, ctor := range all {
		if seen[ctor] {
			split.Present = append(split.Present, ctor)
		} else {
			split.Missing = append(split.Missing, ctor)
		}
	}
	return split, nil
}

// splitInt cuts the domain at every head boundary. Each resulting piece is
// either fully covered by some head (present) or disjoint from all heads
// (missing), so specialization never has to reason about partial overlap.
func splitInt(t *IntType, heads []Ctor) ColumnSplit {
	domain := interval{t.Lo, t.Hi}
	ivs := make([]interval, len(heads))
	for i, h := range heads {
		ivs[i] = interval{h.Lo, h.Hi}
	}
	covered := normalize(ivs)

	var split ColumnSplit
	for _, piece := range splitBoundaries(domain, ivs) {
		inCovered := false
		for _, cov := range covered {
			if cov.contains(piece) {
				inCovered = true
				break
			}
		}
		ctor := Ctor{Kind: CtorRange, Lo: piece.lo, Hi: piece.hi}
		if inCovered {
			split.Present = append(split.Present, ctor)
		} else {
			split.Missing = append(split.Missing, ctor)
		}
	}
	return split
}

// splitSlice splits on the exact lengths appearing in the column. The
// length domain is unbounded, so the missing set is never empty; it is
// represented by the smallest length no pattern matches.
func splitSlice(heads []Ctor) ColumnSplit {
	lens := make(map[int]bool, len(heads))
	maxLen := -1
	for _, h := range heads {
		lens[h.Len] = true
		if h.Len > maxLen {
			maxLen = h.Len
		}
	}
	var split ColumnSplit
	for l := 0; l <= maxLen; l++ {
		if lens[l] {
			split.Present = append(split.Present, Ctor{Kind: CtorSlice, Len: l})
		}
	}
	for l := 0; ; l++ {
		if !lens[l] {
			split.Missing = append(split.Missing, Ctor{Kind: CtorSlice, Len: l})
			break
		}
	}
	return split
}

// ctorFields returns the column types a constructor's fields expand into.
func ctorFields(t Type, c Ctor) []Type {
	switch ty := t.(type) {
	case *BoolType:
		return nil
	case *IntType:
		return nil
	case *EnumType:
		return ty.Variants[c.Index].Fields
	case *TupleType:
		return ty.Elems
	case *StructType:
		return ty.Fields
	case *SliceType:
		fields := make([]Type, c.Len)
		for i := range fields {
			fields[i] = ty.Elem
		}
		return fields
	}
	panic(fmt.Sprintf("constructor fields for unknown type %T", t))
}

// concretize turns a missing constructor into a concrete witness pattern,
// filling every field with the domain-first default value.
func (a *Arena) concretize(t Type, c Ctor) PatternID {
	fields := ctorFields(t, c)
	subs := make([]PatternID, len(fields))
	for i, ft := range fields {
		subs[i] = a.defaultPattern(ft)
	}
	if c.Kind == CtorRange {
		return a.Int(c.Lo)
	}
	return a.Ctor(c, subs...)
}
