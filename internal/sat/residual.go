package sat

// residual is R(C) for a single clause: either satisfied (⊤) or the set of
// literals not yet falsified by the current assignment (§3). A residual is
// unit when it holds exactly one literal, conflicting when it holds none.
type residual struct {
	sat  bool
	lits []Literal
}

func (r *residual) isUnit() bool {
	return !r.sat && len(r.lits) == 1
}

func (r *residual) isConflict() bool {
	return !r.sat && len(r.lits) == 0
}

// unitLiteral returns the sole literal of a unit residual.
func (r *residual) unitLiteral() Literal {
	return r.lits[0]
}

func removeLiteral(lits []Literal, l Literal) []Literal {
	for i, x := range lits {
		if x == l {
			lits[i] = lits[len(lits)-1]
			return lits[:len(lits)-1]
		}
	}
	return lits
}

func containsLiteral(lits []Literal, l Literal) bool {
	for _, x := range lits {
		if x == l {
			return true
		}
	}
	return false
}

// litValue returns the current truth value of literal l under the trail.
func (s *Solver) litValue(l Literal) LBool {
	v := s.value[l.VarID()]
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// computeResidual computes R(C) from scratch against the current trail
// (§4.2): C is satisfied if any of its literals is true, otherwise R(C) is
// the literals whose variable is unassigned or not yet falsified.
func (s *Solver) computeResidual(c *Clause) residual {
	for _, l := range c.literals {
		if s.litValue(l) == True {
			return residual{sat: true}
		}
	}
	lits := make([]Literal, 0, len(c.literals))
	for _, l := range c.literals {
		if s.litValue(l) != False {
			lits = append(lits, l)
		}
	}
	return residual{lits: lits}
}

// applyAssign maintains R for every clause touched by assigning variable v
// to value (§4.2, "Incremental rules on add_assignment"). τ is the literal
// made true by the assignment, φ its negation.
func (s *Solver) applyAssign(v int, value bool) {
	tau := PositiveLiteral(v)
	if !value {
		tau = NegativeLiteral(v)
	}
	phi := tau.Opposite()

	for _, c := range s.index.at(tau) {
		r := &s.residuals[c.id]
		if !r.sat {
			r.sat = true
			r.lits = nil
		}
	}

	for _, c := range s.index.at(phi) {
		r := &s.residuals[c.id]
		if r.sat {
			continue
		}
		r.lits = removeLiteral(r.lits, phi)
		switch len(r.lits) {
		case 0:
			s.conflict = c
		case 1:
			s.pushUnit(c)
		}
	}
}

// applyUnassign is the converse of applyAssign, run when the trail entry
// for variable v (assigned to value) is popped (§4.2, "Incremental rules
// on pop_assignment"). It must be called after value[v] has been reset to
// Unknown.
func (s *Solver) applyUnassign(v int, value bool) {
	tau := PositiveLiteral(v)
	if !value {
		tau = NegativeLiteral(v)
	}
	phi := tau.Opposite()

	for _, c := range s.index.at(tau) {
		r := &s.residuals[c.id]
		if !r.sat {
			continue // was not satisfied via τ, nothing to undo
		}
		// τ no longer holds: recompute from scratch, since another
		// literal of C may or may not still satisfy it.
		*r = s.computeResidual(c)
		s.clearStaleConflict(c, r)
		if r.isUnit() {
			s.pushUnit(c)
		}
	}

	for _, c := range s.index.at(phi) {
		r := &s.residuals[c.id]
		if r.sat {
			continue
		}
		r.lits = append(r.lits, phi)
		s.clearStaleConflict(c, r)
		if r.isUnit() {
			s.pushUnit(c)
		}
	}
}

// clearStaleConflict drops the conflict slot if it pointed at c and
// popping the trail has since made c's residual non-empty again (§4.2
// rule 4).
func (s *Solver) clearStaleConflict(c *Clause, r *residual) {
	if s.conflict == c && !r.isConflict() {
		s.conflict = nil
	}
}
