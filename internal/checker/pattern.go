package checker

import (
	"fmt"
	"strconv"
	"strings"
)

// PatternKind is the closed set of normalized pattern shapes.
type PatternKind uint8

const (
	PatWildcard PatternKind = iota
	PatCtor
	PatOr
	PatRange
	PatBinding
)

func (k PatternKind) String() string {
	switch k {
	case PatWildcard:
		return "wildcard"
	case PatCtor:
		return "constructor"
	case PatOr:
		return "or"
	case PatRange:
		return "range"
	case PatBinding:
		return "binding"
	}
	panic(fmt.Sprintf("unknown pattern kind %d", uint8(k)))
}

// PatternID addresses a pattern node inside an Arena. Matrix rows and
// witnesses hold IDs, never node copies, so specialization is a cheap
// reslicing operation.
type PatternID int32

type patternNode struct {
	kind   PatternKind
	ctor   Ctor        // PatCtor
	subs   []PatternID // PatCtor fields, PatOr alternatives, PatBinding inner
	lo, hi int64       // PatRange, inclusive bounds
	name   string      // PatBinding
}

// Arena owns every pattern node of one checker invocation. It is not safe
// for concurrent use; independent invocations get independent arenas.
type Arena struct {
	nodes []patternNode
}

// NewArena creates an empty arena with the shared wildcard pre-allocated.
func NewArena() *Arena {
	return &Arena{nodes: []patternNode{{kind: PatWildcard}}}
}

func (a *Arena) add(n patternNode) PatternID {
	a.nodes = append(a.nodes, n)
	return PatternID(len(a.nodes) - 1)
}

func (a *Arena) node(id PatternID) *patternNode {
	return &a.nodes[id]
}

// Wildcard returns the shared wildcard pattern.
func (a *Arena) Wildcard() PatternID { return 0 }

// Ctor creates a constructor pattern with ordered subpatterns.
func (a *Arena) Ctor(c Ctor, subs ...PatternID) PatternID {
	return a.add(patternNode{kind: PatCtor, ctor: c, subs: subs})
}

// Bool creates a boolean literal pattern.
func (a *Arena) Bool(v bool) PatternID {
	return a.Ctor(Ctor{Kind: CtorBool, B: v})
}

// Variant creates an enum constructor pattern for the variant at index.
func (a *Arena) Variant(index int, subs ...PatternID) PatternID {
	return a.Ctor(Ctor{Kind: CtorVariant, Index: index}, subs...)
}

// Single creates the sole constructor pattern of a tuple or struct column.
func (a *Arena) Single(subs ...PatternID) PatternID {
	return a.Ctor(Ctor{Kind: CtorSingle}, subs...)
}

// Slice creates a fixed-length slice pattern.
func (a *Arena) Slice(subs ...PatternID) PatternID {
	return a.Ctor(Ctor{Kind: CtorSlice, Len: len(subs)}, subs...)
}

// Range creates an inclusive integer range pattern.
func (a *Arena) Range(lo, hi int64) PatternID {
	return a.add(patternNode{kind: PatRange, lo: lo, hi: hi})
}

// Int creates a single-value integer pattern.
func (a *Arena) Int(v int64) PatternID { return a.Range(v, v) }

// Or creates an or-pattern. Alternatives that are themselves or-patterns
// are flattened in place, keeping order, so Or never nests directly.
func (a *Arena) Or(alts ...PatternID) PatternID {
	flat := make([]PatternID, 0, len(alts))
	for _, alt := range alts {
		if a.node(alt).kind == PatOr {
			flat = append(flat, a.node(alt).subs...)
		} else {
			flat = append(flat, alt)
		}
	}
	return a.add(patternNode{kind: PatOr, subs: flat})
}

// Binding creates a named binding around inner. Bindings are transparent
// for coverage; they only matter for rendering.
func (a *Arena) Binding(name string, inner PatternID) PatternID {
	return a.add(patternNode{kind: PatBinding, name: name, subs: []PatternID{inner}})
}

// unwrap strips binding wrappers, returning the coverage-relevant node.
func (a *Arena) unwrap(id PatternID) PatternID {
	for a.node(id).kind == PatBinding {
		id = a.node(id).subs[0]
	}
	return id
}

// alternatives returns the top-level alternatives of a pattern: the
// flattened or-list, or the pattern itself when it is not an or-pattern.
// Binding wrappers are stripped, including around alternatives, so the
// result never contains an or-pattern itself.
func (a *Arena) alternatives(id PatternID) []PatternID {
	id = a.unwrap(id)
	n := a.node(id)
	if n.kind != PatOr {
		return []PatternID{id}
	}
	out := make([]PatternID, 0, len(n.subs))
	for _, alt := range n.subs {
		out = append(out, a.alternatives(alt)...)
	}
	return out
}

// Render produces the canonical textual form of a pattern against its
// column type. The same input always renders to the same bytes; witness
// ordering and deduplication rely on that.
func (a *Arena) Render(t Type, id PatternID) string {
	n := a.node(id)
	switch n.kind {
	case PatWildcard:
		return "_"
	case PatBinding:
		inner := a.unwrap(id)
		if a.node(inner).kind == PatWildcard {
			return n.name
		}
		return n.name + " @ " + a.Render(t, n.subs[0])
	case PatOr:
		parts := make([]string, len(n.subs))
		for i, alt := range n.subs {
			parts[i] = a.Render(t, alt)
		}
		return strings.Join(parts, " | ")
	case PatRange:
		if n.lo == n.hi {
			return strconv.FormatInt(n.lo, 10)
		}
		return fmt.Sprintf("%d..=%d", n.lo, n.hi)
	case PatCtor:
		return a.renderCtor(t, n)
	}
	panic(fmt.Sprintf("unknown pattern kind %d", uint8(n.kind)))
}

func (a *Arena) renderCtor(t Type, n *patternNode) string {
	switch ty := t.(type) {
	case *BoolType:
		return strconv.FormatBool(n.ctor.B)
	case *EnumType:
		v := ty.Variants[n.ctor.Index]
		if len(v.Fields) == 0 {
			return v.Name
		}
		return v.Name + "(" + a.renderFields(v.Fields, n.subs) + ")"
	case *TupleType:
		return "(" + a.renderFields(ty.Elems, n.subs) + ")"
	case *StructType:
		return ty.Name + "(" + a.renderFields(ty.Fields, n.subs) + ")"
	case *SliceType:
		elems := make([]Type, len(n.subs))
		for i := range elems {
			elems[i] = ty.Elem
		}
		return "[" + a.renderFields(elems, n.subs) + "]"
	case *IntType:
		if n.ctor.Lo == n.ctor.Hi {
			return strconv.FormatInt(n.ctor.Lo, 10)
		}
		return fmt.Sprintf("%d..=%d", n.ctor.Lo, n.ctor.Hi)
	}
	panic(fmt.Sprintf("constructor pattern against unknown type %T", t))
}

func (a *Arena) renderFields(types []Type, subs []PatternID) string {
	parts := make([]string, len(subs))
	for i, sub := range subs {
		parts[i] = a.Render(types[i], sub)
	}
	return strings.Join(parts, ", ")
}

// maxDefaultDepth caps defaultPattern recursion so self-referential enum
// descriptors degrade to wildcards instead of looping.
const maxDefaultDepth = 32

// defaultPattern builds the domain-first concrete value of a type: false,
// the domain's low bound, the first variant, the empty slice, with fields
// filled recursively. Used to concretize witness positions the matrix puts
// no constraint on.
func (a *Arena) defaultPattern(t Type) PatternID {
	return a.defaultPatternDepth(t, 0)
}

func (a *Arena) defaultPatternDepth(t Type, depth int) PatternID {
	if depth > maxDefaultDepth {
		return a.Wildcard()
	}
	switch ty := t.(type) {
	case *BoolType:
		return a.Bool(false)
	case *IntType:
		return a.Int(ty.Lo)
	case *EnumType:
		return a.Variant(0, a.defaultFields(ty.Variants[0].Fields, depth)...)
	case *TupleType:
		return a.Single(a.defaultFields(ty.Elems, depth)...)
	case *StructType:
		return a.Single(a.defaultFields(ty.Fields, depth)...)
	case *SliceType:
		return a.Slice()
	}
	panic(fmt.Sprintf("default pattern for unknown type %T", t))
}

func (a *Arena) defaultFields(types []Type, depth int) []PatternID {
	subs := make([]PatternID, len(types))
	for i, ft := range types {
		subs[i] = a.defaultPatternDepth(ft, depth+1)
	}
	return subs
}
