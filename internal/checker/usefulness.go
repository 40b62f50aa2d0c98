package checker

import (
	"fmt"

	"martianoff/matchcheck/matcherr"
)

// DefaultBudget is the step budget of one checker invocation. Every
// recursion step pays for itself plus the rows it examines, so the budget
// bounds both running time and recursion depth; exceeding it yields a
// conservative "inconclusive" result instead of a stack overflow.
const DefaultBudget = 1 << 20

// witnessRow is a concrete pattern sequence, one entry per remaining
// column, demonstrating a value the matrix does not match.
type witnessRow []PatternID

// usefulness carries the state of one recursive decision: the constructor
// catalog, the pattern arena, the remaining step budget and whether
// witnesses are being collected. In boolean mode the recursion
// short-circuits; in witness mode it visits every branch that can
// contribute a counterexample.
type usefulness struct {
	cat     *Catalog
	arena   *Arena
	budget  int
	steps   int
	collect bool
}

func newUsefulness(cat *Catalog, arena *Arena, budget int, collect bool) *usefulness {
	return &usefulness{cat: cat, arena: arena, budget: budget, steps: budget, collect: collect}
}

// isUseful decides whether the candidate row would match any value the
// matrix does not, consuming columns left to right. In witness mode the
// returned rows are the concrete counterexamples found along successful
// branches, in deterministic traversal order.
func (u *usefulness) isUseful(m *matrix, cand []PatternID) (bool, []witnessRow, error) {
	u.steps -= 1 + len(m.rows)
	if u.steps < 0 {
		return false, nil, matcherr.NewBudgetError(u.budget, "usefulness recursion aborted")
	}

	// All columns consumed: an empty matrix admits anything, a non-empty
	// one already matches the whole remaining value space.
	if len(cand) == 0 {
		if len(m.rows) > 0 {
			return false, nil, nil
		}
		if u.collect {
			return true, []witnessRow{{}}, nil
		}
		return true, nil, nil
	}

	head := u.arena.node(u.arena.unwrap(cand[0]))
	switch head.kind {
	case PatOr:
		return u.usefulOr(m, head.subs, cand[1:])
	case PatCtor:
		return u.usefulCtor(m, head.ctor, head.subs, cand[1:])
	case PatRange:
		return u.usefulRange(m, interval{head.lo, head.hi}, cand[1:])
	case PatWildcard:
		return u.usefulWildcard(m, cand[1:])
	}
	panic(fmt.Sprintf("unexpected candidate pattern kind %s", head.kind))
}

// usefulOr evaluates alternatives left to right against the same growing
// matrix: each alternative found useful is folded in before the next is
// tested, so a later alternative already covered by an earlier one in the
// same pattern comes out not useful even though the whole pattern is.
func (u *usefulness) usefulOr(m *matrix, alts []PatternID, rest []PatternID) (bool, []witnessRow, error) {
	acc := m.clone()
	useful := false
	var wits []witnessRow
	for _, alt := range alts {
		cand := make([]PatternID, 0, 1+len(rest))
		cand = append(cand, alt)
		cand = append(cand, rest...)
		ok, w, err := u.isUseful(acc, cand)
		if err != nil {
			return false, nil, err
		}
		if ok {
			useful = true
			wits = append(wits, w...)
			acc.pushRow(cand)
		}
	}
	return useful, wits, nil
}

// usefulCtor specializes matrix and candidate by the candidate's own
// constructor and recurses into its fields.
func (u *usefulness) usefulCtor(m *matrix, c Ctor, subs []PatternID, rest []PatternID) (bool, []witnessRow, error) {
	cand := make([]PatternID, 0, len(subs)+len(rest))
	cand = append(cand, subs...)
	cand = append(cand, rest...)
	ok, w, err := u.isUseful(m.specialize(c), cand)
	if err != nil || !ok {
		return false, nil, err
	}
	return true, u.applyCtor(m.types[0], c, len(subs), w), nil
}

// usefulRange splits the candidate range at every boundary appearing in
// the column, so each specialization compares like-for-like intervals, and
// recurses per resulting sub-range in ascending order.
func (u *usefulness) usefulRange(m *matrix, target interval, rest []PatternID) (bool, []witnessRow, error) {
	var headIvs []interval
	for _, h := range m.headCtors() {
		if h.Kind == CtorRange {
			headIvs = append(headIvs, interval{h.Lo, h.Hi})
		}
	}
	useful := false
	var wits []witnessRow
	for _, piece := range splitBoundaries(target, headIvs) {
		c := Ctor{Kind: CtorRange, Lo: piece.lo, Hi: piece.hi}
		ok, w, err := u.isUseful(m.specialize(c), rest)
		if err != nil {
			return false, nil, err
		}
		if !ok {
			continue
		}
		useful = true
		if !u.collect {
			return true, nil, nil
		}
		for _, row := range w {
			wits = append(wits, prepend(u.arena.Range(piece.lo, piece.hi), row))
		}
	}
	return useful, wits, nil
}

// usefulWildcard splits the column into the constructors present in the
// matrix plus the synthetic missing constructor when they do not exhaust
// the type. In boolean mode a non-empty missing set makes the default
// matrix decisive on its own; in witness mode every present constructor is
// visited first, in declaration order, so counterexamples under present
// constructors are reported alongside the missing ones.
func (u *usefulness) usefulWildcard(m *matrix, rest []PatternID) (bool, []witnessRow, error) {
	split, err := u.cat.SplitColumn(m.types[0], m.headCtors())
	if err != nil {
		return false, nil, err
	}

	if !u.collect && len(split.Missing) > 0 {
		ok, _, err := u.isUseful(m.defaultMatrix(), rest)
		return ok, nil, err
	}

	useful := false
	var wits []witnessRow
	for _, c := range split.Present {
		arity := len(ctorFields(m.types[0], c))
		cand := make([]PatternID, 0, arity+len(rest))
		for i := 0; i < arity; i++ {
			cand = append(cand, u.arena.Wildcard())
		}
		cand = append(cand, rest...)
		ok, w, err := u.isUseful(m.specialize(c), cand)
		if err != nil {
			return false, nil, err
		}
		if !ok {
			continue
		}
		useful = true
		if !u.collect {
			return true, nil, nil
		}
		wits = append(wits, u.applyCtor(m.types[0], c, arity, w)...)
	}

	if len(split.Missing) > 0 {
		ok, w, err := u.isUseful(m.defaultMatrix(), rest)
		if err != nil {
			return false, nil, err
		}
		if ok {
			useful = true
			wits = append(wits, u.expandMissing(m.types[0], split, w)...)
		}
	}
	return useful, wits, nil
}

// applyCtor folds the first arity entries of each witness row back into a
// constructor pattern, rebuilding the witness bottom-up. Range constructors
// collapse to their low bound so the witness stays a single concrete value.
func (u *usefulness) applyCtor(t Type, c Ctor, arity int, rows []witnessRow) []witnessRow {
	if !u.collect {
		return nil
	}
	out := make([]witnessRow, len(rows))
	for i, row := range rows {
		head := u.arena.Ctor(c, row[:arity]...)
		if c.Kind == CtorRange {
			head = u.arena.Int(c.Lo)
		}
		out[i] = prepend(head, row[arity:])
	}
	return out
}

// expandMissing turns a successful default-matrix branch into witnesses.
// When the column also has present constructors, each missing constructor
// yields its own witness with domain-first fields; a wholly unconstrained
// column collapses to the single simplest witness.
func (u *usefulness) expandMissing(t Type, split ColumnSplit, rows []witnessRow) []witnessRow {
	missing := split.Missing
	if len(split.Present) == 0 {
		missing = missing[:1]
	}
	var out []witnessRow
	for _, mc := range missing {
		pat := u.arena.concretize(t, mc)
		for _, row := range rows {
			out = append(out, prepend(pat, row))
		}
	}
	return out
}

func prepend(id PatternID, row witnessRow) witnessRow {
	out := make(witnessRow, 0, 1+len(row))
	out = append(out, id)
	return append(out, row...)
}
