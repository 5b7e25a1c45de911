package sat

import "log"

// litOfVar returns the literal naming variable v within lits, if any.
// Canonical clauses never hold both polarities of the same variable, so
// there is at most one match.
func litOfVar(lits []Literal, v int) (Literal, bool) {
	for _, l := range lits {
		if l.VarID() == v {
			return l, true
		}
	}
	return 0, false
}

// resolve implements the inference (A ∨ ℓ), (B ∨ ¬ℓ) ⊢ (A ∨ B): c must
// contain exactly one of {+v,−v} and d the opposite polarity. It returns
// (c \ {+v,−v}) ∪ (d \ {+v,−v}) with duplicate literals collapsed, since
// clauses are sets (§4.4).
func (s *Solver) resolve(reasonLits []Literal, d []Literal, v int) []Literal {
	cl, ok := litOfVar(reasonLits, v)
	if !ok {
		log.Fatalf("sat: resolve precondition violated: reason clause does not mention variable %d", v)
	}
	dl, ok := litOfVar(d, v)
	if !ok || dl != cl.Opposite() {
		log.Fatalf("sat: resolve precondition violated: variable %d does not appear with opposite polarity in d", v)
	}

	// seenVar dedups by variable rather than literal: a canonical clause or
	// accumulator never holds both polarities of the same variable, so
	// variable-level dedup is equivalent and lets the two inputs share one
	// reusable scratch set (§4.4, reusing the scratch-set idiom from the
	// teacher's seenVar field).
	s.seenVar.Clear()
	out := make([]Literal, 0, len(reasonLits)+len(d))
	for _, l := range reasonLits {
		if l.VarID() == v {
			continue
		}
		if !s.seenVar.Contains(l.VarID()) {
			s.seenVar.Add(l.VarID())
			out = append(out, l)
		}
	}
	for _, l := range d {
		if l.VarID() == v {
			continue
		}
		if !s.seenVar.Contains(l.VarID()) {
			s.seenVar.Add(l.VarID())
			out = append(out, l)
		}
	}
	return out
}

// analyze derives a learned clause from conflicting clause K by resolving
// along the implication chain in trail order, newest to oldest (§4.4).
// Every propagated (non-decision) variable that appears in the accumulator
// is resolved out; decision variables are never resolved and so survive,
// negated, into the result. The returned clause is a logical consequence of
// F; if it is empty, F is unsatisfiable.
func (s *Solver) analyze(conflict *Clause) []Literal {
	d := append([]Literal(nil), conflict.literals...)

	for i := len(s.trail) - 1; i >= 0; i-- {
		v := s.trail[i].VarID()
		reason := s.reason[v]
		if reason == nil {
			continue // decision: never resolved away
		}
		if _, ok := litOfVar(d, v); !ok {
			continue // v does not (yet) appear in the accumulator
		}
		d = s.resolve(reason.literals, d, v)
	}

	return d
}
