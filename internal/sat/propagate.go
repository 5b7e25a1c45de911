package sat

// unitProp drains the unit queue U, extending the assignment one forced
// literal at a time and maintaining the residual view, until either U is
// empty or a conflict surfaces (§4.3). It must run to a fixed point before
// the driver branches.
func (s *Solver) unitProp() {
	for !s.unitQueue.IsEmpty() {
		id := s.unitQueue.Pop()
		c := s.clauses[id]
		r := &s.residuals[id]

		if !r.isUnit() {
			// C was re-satisfied, fully falsified (already surfaced as a
			// conflict elsewhere), or already propagated since it was
			// queued; nothing to do (§4.3 step 2).
			continue
		}

		l := r.unitLiteral()
		v := l.VarID()
		if s.VarValue(v) != Unknown {
			continue // already assigned; the residual will catch up shortly
		}

		s.assign(l, c)
		s.Propagations++

		if s.hasConflict() {
			return
		}
	}
}
