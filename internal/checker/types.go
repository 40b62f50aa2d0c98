package checker

import (
	"fmt"
	"strings"
)

// Type describes the shape of a scrutinee component. The set of
// implementations is closed: *EnumType, *TupleType, *StructType, *BoolType,
// *IntType and *SliceType. All implementations are pointers so Type values
// are comparable and usable as cache keys.
type Type interface {
	String() string
}

// Variant is one constructor of an enum: a name plus ordered field types.
// Variants are owned by their EnumType and never shared.
type Variant struct {
	Name   string
	Fields []Type
}

// EnumType is a finite sum of variants in declaration order.
type EnumType struct {
	Name     string
	Variants []Variant
}

func (t *EnumType) String() string { return t.Name }

// TupleType is a fixed-arity product with positional fields.
type TupleType struct {
	Elems []Type
}

func (t *TupleType) String() string {
	elems := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.String()
	}
	return "(" + strings.Join(elems, ", ") + ")"
}

// StructType is a named product with ordered fields. Field names are kept
// for rendering only; coverage is positional.
type StructType struct {
	Name       string
	Fields     []Type
	FieldNames []string
}

func (t *StructType) String() string { return t.Name }

// BoolType has exactly the constructors false and true, in that order.
type BoolType struct{}

func (t *BoolType) String() string { return "bool" }

// IntType is a bounded integer domain [Lo, Hi], both inclusive. Char-like
// domains are IntTypes over the code-point range; the checker never
// enumerates the domain, it works on intervals.
type IntType struct {
	Name   string // optional display name, e.g. "u8"
	Lo, Hi int64
}

func (t *IntType) String() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("int(%d..=%d)", t.Lo, t.Hi)
}

// SliceType is a variable-length sequence of Elem. Its constructor space is
// one constructor per length, so it is never enumerated; the catalog works
// on the lengths appearing in a column instead.
type SliceType struct {
	Elem Type
}

func (t *SliceType) String() string { return "[]" + t.Elem.String() }
