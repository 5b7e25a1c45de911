package sat

import "testing"

func TestResidual_incrementalMatchesFromScratch(t *testing.T) {
	s := newInstance(t, 3)
	addClause(t, s, 1, 2, 3)
	c := s.clauses[0]

	s.assign(PositiveLiteral(2), nil)
	want := s.computeResidual(c)
	got := s.residuals[c.id]
	if got.sat != want.sat || len(got.lits) != len(want.lits) {
		t.Fatalf("residual after assign: got %+v, want %+v", got, want)
	}

	s.popTrail()
	want = s.computeResidual(c)
	got = s.residuals[c.id]
	if got.sat != want.sat || len(got.lits) != len(want.lits) {
		t.Fatalf("residual after pop: got %+v, want %+v", got, want)
	}
}

func TestResidual_conflictDetected(t *testing.T) {
	s := newInstance(t, 2)
	addClause(t, s, 1, 2)

	s.assign(NegativeLiteral(1), nil)
	if s.hasConflict() {
		t.Fatalf("hasConflict(): got true, want false after one literal falsified of a 2-clause")
	}

	s.assign(NegativeLiteral(2), nil)
	if !s.hasConflict() {
		t.Fatalf("hasConflict(): got false, want true once both literals are falsified")
	}
}

func TestResidual_unitDetected(t *testing.T) {
	s := newInstance(t, 2)
	addClause(t, s, 1, 2)

	s.assign(NegativeLiteral(1), nil)
	if !s.unitQueue.IsEmpty() {
		id := s.unitQueue.Pop()
		c := s.clauses[id]
		r := s.residuals[c.id]
		if !r.isUnit() || r.unitLiteral() != PositiveLiteral(2) {
			t.Errorf("unit residual: got %+v, want unit literal 2", r)
		}
	} else {
		t.Errorf("unit queue: want clause queued after falsifying one literal of a 2-clause")
	}
}
