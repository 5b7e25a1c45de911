package sat

// pushUnit records that clause c currently has a singleton residual and
// should be visited by the propagation engine (§3, unit queue U). Stale
// entries (clauses no longer unit by the time they are popped) are
// tolerated and skipped by the propagation engine rather than removed
// eagerly here, per §4.3 step 2.
func (s *Solver) pushUnit(c *Clause) {
	s.unitQueue.Push(c.id)
}

// hasConflict reports whether the conflict slot K is currently set.
func (s *Solver) hasConflict() bool {
	return s.conflict != nil
}
