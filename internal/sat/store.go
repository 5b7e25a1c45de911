package sat

// literalIndex maps each literal in {±1,…,±N} to the set of clauses
// containing it (§3, "Literal index L"). It is direct-addressed, as
// recommended by the design notes: variables are dense 1..N, so a slice of
// size 2N+1 indexed by literal+N covers every literal in range.
type literalIndex struct {
	n       int
	buckets [][]*Clause
}

// growTo widens the index to cover variables up to n. Since every literal's
// slot is literal+n (offset by the current n, §9), widening n shifts where
// every existing literal lands; the old contents are re-based by the same
// delta rather than copied in place, so clauses added before a growth are
// still found at their (new) slot afterward.
func (li *literalIndex) growTo(n int) {
	if n <= li.n {
		return
	}
	delta := n - li.n
	grown := make([][]*Clause, 2*n+1)
	copy(grown[delta:], li.buckets)
	li.n = n
	li.buckets = grown
}

func (li *literalIndex) at(l Literal) []*Clause {
	return li.buckets[l.index(li.n)]
}

func (li *literalIndex) add(l Literal, c *Clause) {
	idx := l.index(li.n)
	li.buckets[idx] = append(li.buckets[idx], c)
}

// AddVariable declares a new propositional variable and returns its 1-based
// ID. Every structure indexed by variable or literal grows to accommodate
// it.
func (s *Solver) AddVariable() int {
	s.numVars++
	v := s.numVars

	s.index.growTo(s.numVars)
	s.value = append(s.value, Unknown)
	s.reason = append(s.reason, nil)
	s.seenVar.Expand()
	s.order.addVar(v)

	return v
}

// NumVariables returns N, the number of declared variables.
func (s *Solver) NumVariables() int {
	return s.numVars
}

// clausesTouching returns L[+v] ∪ L[−v], the clauses whose residual may
// change when v is assigned or unassigned (§4.1).
func (s *Solver) clausesTouching(v int) []*Clause {
	pos := s.index.at(PositiveLiteral(v))
	neg := s.index.at(NegativeLiteral(v))
	if len(neg) == 0 {
		return pos
	}
	if len(pos) == 0 {
		return neg
	}
	touched := make([]*Clause, 0, len(pos)+len(neg))
	touched = append(touched, pos...)
	touched = append(touched, neg...)
	return touched
}

// addClauseInternal inserts a clause into F (§4.1). It canonicalizes the
// literal set (deduping repeated literals, detecting tautologies),
// hash-conses it against any existing clause with the same content,
// computes its residual against the current trail, and updates the unit
// queue/conflict slot. It may be called at any point during the search, not
// only at the root: the conflict analyzer calls it with a freshly derived
// learned clause while the trail is still (partially) populated. It returns
// nil if the clause was a tautology or the empty clause, and the
// already-tracked clause if it duplicates one.
func (s *Solver) addClauseInternal(lits []Literal, learnt bool) *Clause {
	canon, tautology := canonicalize(lits)
	if tautology {
		return nil
	}
	if len(canon) == 0 {
		// The empty clause can never be satisfied: the formula is UNSAT.
		s.unsat = true
		return nil
	}

	k := key(canon)
	if existing, ok := s.byKey[k]; ok {
		return existing
	}

	c := newClause(canon, learnt)
	c.id = len(s.clauses)
	s.clauses = append(s.clauses, c)
	s.byKey[k] = c

	for _, l := range canon {
		s.index.add(l, c)
		s.order.bump(l)
	}

	r := s.computeResidual(c)
	s.residuals = append(s.residuals, r)

	switch {
	case r.isConflict():
		s.conflict = c
	case r.isUnit():
		s.pushUnit(c)
	}

	if learnt {
		s.learnts = append(s.learnts, c)
	}
	return c
}

// AddClause inserts an original (non-learned) clause into the formula. It
// is the entry point used by the external DIMACS loader (§6); the core
// never returns an error from it, following the teacher's convention of
// signaling a directly-unsatisfiable formula through the unsat flag instead
// (checked by Solve).
func (s *Solver) AddClause(lits []Literal) error {
	s.addClauseInternal(lits, false)
	return nil
}
