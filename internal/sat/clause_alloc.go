package sat

// newClause allocates a Clause owning a private copy of literals. Clauses
// are never freed: originals live for the lifetime of the solver and
// learned clauses accumulate without pruning (§5, §9(ii)), so there is no
// point in their lifecycle at which recycling a literal slice would help
// (see the teacher's clause_allocpool.go, dropped for this reason — see
// DESIGN.md).
func newClause(literals []Literal, learnt bool) *Clause {
	c := &Clause{learnt: learnt}
	c.literals = make([]Literal, len(literals))
	copy(c.literals, literals)
	return c
}
