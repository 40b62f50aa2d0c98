package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func optionType() *EnumType {
	return &EnumType{
		Name: "Option",
		Variants: []Variant{
			{Name: "None"},
			{Name: "Some", Fields: []Type{&BoolType{}}},
		},
	}
}

func TestOrFlattening(t *testing.T) {
	a := NewArena()

	inner := a.Or(a.Int(1), a.Int(2))
	outer := a.Or(inner, a.Int(3))

	n := a.node(outer)
	assert.Equal(t, PatOr, n.kind)
	assert.Len(t, n.subs, 3)
	for _, alt := range n.subs {
		assert.NotEqual(t, PatOr, a.node(alt).kind)
	}
}

func TestAlternativesStripBindings(t *testing.T) {
	a := NewArena()

	or := a.Or(a.Bool(true), a.Binding("x", a.Or(a.Bool(false), a.Wildcard())))
	alts := a.alternatives(a.Binding("y", or))

	assert.Len(t, alts, 3)
	for _, alt := range alts {
		kind := a.node(alt).kind
		assert.NotEqual(t, PatOr, kind)
		assert.NotEqual(t, PatBinding, kind)
	}
}

func TestRender(t *testing.T) {
	a := NewArena()
	boolT := &BoolType{}
	intT := &IntType{Lo: 0, Hi: 99}
	opt := optionType()
	pair := &TupleType{Elems: []Type{boolT, boolT}}
	point := &StructType{Name: "Point", Fields: []Type{intT, intT}, FieldNames: []string{"x", "y"}}
	bytesT := &SliceType{Elem: boolT}

	tests := []struct {
		name string
		typ  Type
		pat  PatternID
		want string
	}{
		{"wildcard", boolT, a.Wildcard(), "_"},
		{"bool literal", boolT, a.Bool(true), "true"},
		{"unit variant", opt, a.Variant(0), "None"},
		{"variant with field", opt, a.Variant(1, a.Bool(false)), "Some(false)"},
		{"tuple", pair, a.Single(a.Bool(false), a.Wildcard()), "(false, _)"},
		{"struct", point, a.Single(a.Int(1), a.Wildcard()), "Point(1, _)"},
		{"single value range", intT, a.Int(5), "5"},
		{"proper range", intT, a.Range(0, 9), "0..=9"},
		{"empty slice", bytesT, a.Slice(), "[]"},
		{"slice", bytesT, a.Slice(a.Bool(true), a.Wildcard()), "[true, _]"},
		{"or", boolT, a.Or(a.Bool(true), a.Bool(false)), "true | false"},
		{"named binding", boolT, a.Binding("x", a.Wildcard()), "x"},
		{"binding with inner", boolT, a.Binding("x", a.Bool(true)), "x @ true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Render(tt.typ, tt.pat))
		})
	}
}

func TestDefaultPattern(t *testing.T) {
	a := NewArena()
	boolT := &BoolType{}
	intT := &IntType{Lo: 10, Hi: 99}
	opt := optionType()
	pair := &TupleType{Elems: []Type{boolT, intT}}
	sliceT := &SliceType{Elem: boolT}

	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"bool is false", boolT, "false"},
		{"int is domain low", intT, "10"},
		{"enum is first variant", opt, "None"},
		{"tuple fills fields", pair, "(false, 10)"},
		{"slice is empty", sliceT, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Render(tt.typ, a.defaultPattern(tt.typ)))
		})
	}
}

func TestDefaultPatternRecursiveType(t *testing.T) {
	a := NewArena()

	// A self-referential enum descriptor must not loop forever.
	list := &EnumType{Name: "List"}
	list.Variants = []Variant{{Name: "Cons", Fields: []Type{list}}}

	id := a.defaultPattern(list)
	assert.NotPanics(t, func() { a.Render(list, id) })
}
