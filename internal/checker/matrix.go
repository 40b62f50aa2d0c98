package checker

import "fmt"

// matrix is the ordered set of pattern rows already known to match, one
// column per scrutinee component. Rows are slices of arena IDs; all
// specialization builds new rows out of the old slices without copying
// pattern nodes. Row order is source order and is semantically significant
// for reachability.
type matrix struct {
	arena *Arena
	types []Type
	rows  [][]PatternID
}

func newMatrix(arena *Arena, types []Type) *matrix {
	return &matrix{arena: arena, types: types}
}

// clone returns a matrix sharing rows with the receiver but safe to append
// to independently.
func (m *matrix) clone() *matrix {
	return &matrix{
		arena: m.arena,
		types: m.types,
		rows:  append([][]PatternID(nil), m.rows...),
	}
}

func (m *matrix) pushRow(pats []PatternID) {
	if len(pats) != len(m.types) {
		panic(fmt.Sprintf("row width %d does not match matrix width %d", len(pats), len(m.types)))
	}
	m.rows = append(m.rows, pats)
}

// headCtor extracts the concrete constructor a pattern is headed by, or
// false for wildcards. Bindings are transparent; or-patterns are handled
// by the callers, which walk alternatives individually.
func headCtor(a *Arena, id PatternID) (Ctor, bool) {
	n := a.node(a.unwrap(id))
	switch n.kind {
	case PatCtor:
		return n.ctor, true
	case PatRange:
		return Ctor{Kind: CtorRange, Lo: n.lo, Hi: n.hi}, true
	case PatWildcard:
		return Ctor{}, false
	}
	panic(fmt.Sprintf("unexpected head pattern kind %s", n.kind))
}

// headCtors collects every concrete constructor appearing in the first
// column, in row order, descending into or-alternatives.
func (m *matrix) headCtors() []Ctor {
	var heads []Ctor
	for _, row := range m.rows {
		for _, alt := range m.arena.alternatives(row[0]) {
			if c, ok := headCtor(m.arena, alt); ok {
				heads = append(heads, c)
			}
		}
	}
	return heads
}

// specialize narrows the matrix to the rows that can match constructor c,
// replacing the first column with c's field columns. Rows headed by a
// different constructor are dropped; wildcard rows expand to all-wildcard
// fields; or-rows expand into one row per matching alternative, keeping
// source order.
func (m *matrix) specialize(c Ctor) *matrix {
	fields := ctorFields(m.types[0], c)
	types := make([]Type, 0, len(fields)+len(m.types)-1)
	types = append(types, fields...)
	types = append(types, m.types[1:]...)

	out := newMatrix(m.arena, types)
	for _, row := range m.rows {
		for _, alt := range m.arena.alternatives(row[0]) {
			if pats, ok := specializeRow(m.arena, alt, row[1:], c, len(fields)); ok {
				out.rows = append(out.rows, pats)
			}
		}
	}
	return out
}

// specializeRow builds the specialized row for one head alternative, or
// reports false when the alternative cannot match c.
func specializeRow(a *Arena, head PatternID, rest []PatternID, c Ctor, arity int) ([]PatternID, bool) {
	n := a.node(a.unwrap(head))
	switch n.kind {
	case PatWildcard:
		pats := make([]PatternID, 0, arity+len(rest))
		for i := 0; i < arity; i++ {
			pats = append(pats, a.Wildcard())
		}
		return append(pats, rest...), true
	case PatCtor:
		if !n.ctor.covers(c) {
			return nil, false
		}
		pats := make([]PatternID, 0, arity+len(rest))
		pats = append(pats, n.subs...)
		return append(pats, rest...), true
	case PatRange:
		if !(Ctor{Kind: CtorRange, Lo: n.lo, Hi: n.hi}).covers(c) {
			return nil, false
		}
		return rest, true
	}
	panic(fmt.Sprintf("unexpected head pattern kind %s", n.kind))
}

// defaultMatrix keeps only the rows whose first column matches anything,
// dropping that column. This is the specialization by the synthetic
// missing constructor: it stands for values no concrete head covers, so
// only wildcard heads survive.
func (m *matrix) defaultMatrix() *matrix {
	out := newMatrix(m.arena, m.types[1:])
	for _, row := range m.rows {
		for _, alt := range m.arena.alternatives(row[0]) {
			if _, ok := headCtor(m.arena, alt); !ok {
				out.rows = append(out.rows, row[1:])
			}
		}
	}
	return out
}
