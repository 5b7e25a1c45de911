package sat

import "log"

// Solver implements the CDCL search engine of §2–§5: the clause store and
// literal index, the residual view, the assignment trail, the unit/conflict
// queues, the propagation engine, the conflict analyzer, and the search
// driver, all as methods on this single type — following the teacher's
// convention of hanging the whole solver state off one struct and splitting
// its operations across files by concern.
type Solver struct {
	numVars int

	// Clause store & literal index (§4.1).
	index   *literalIndex
	clauses []*Clause
	learnts []*Clause
	byKey   map[string]*Clause

	// Residual view R, one entry per clause ID (§4.2).
	residuals []residual

	// Assignment trail (§3): value/reason are indexed by variable ID, trail
	// holds the asserted literals in decision order, trailLim holds the
	// trail length at each decision point.
	value    []LBool
	reason   []*Clause
	trail    []Literal
	trailLim []int

	// Unit queue U and conflict slot K (§3).
	unitQueue *Queue[int]
	conflict  *Clause

	// Decision heuristic (§4.5).
	order *decisionOrder

	// Scratch set reused by the conflict analyzer to dedup literals by
	// variable across resolve() calls without reallocating (§4.4).
	seenVar *ResetSet

	// Restart policy (§4.5 step e): every restartInterval-th conflict, the
	// whole trail is dropped instead of backtracking to the learned
	// clause's assertion point.
	restartInterval int

	// Set once a directly-unsatisfiable clause (the empty clause) has been
	// added, or once analyze derives the empty clause.
	unsat bool

	// Search statistics (§SPEC_FULL.md ambient stack, mirrors the
	// teacher's TotalConflicts/TotalRestarts/TotalIterations fields).
	Conflicts    int
	Decisions    int
	Propagations int
	Restarts     int
	Iterations   int
}

// Options configures a Solver. The zero value is valid and disables
// restarts; DefaultOptions holds the recommended restart interval.
type Options struct {
	// RestartInterval is R in §4.5 step e: every R-th conflict triggers a
	// full restart (the trail is dropped entirely) instead of a learned-
	// clause-driven backjump. A value <= 0 disables restarts.
	RestartInterval int
}

// DefaultOptions holds the restart interval recommended by §4.5 (R=700).
var DefaultOptions = Options{RestartInterval: 700}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NewSolver returns a new, empty Solver (no variables, no clauses).
func NewSolver(opts Options) *Solver {
	s := &Solver{
		index:           &literalIndex{},
		byKey:           make(map[string]*Clause),
		value:           make([]LBool, 1),  // index 0 unused, variables are 1-based
		reason:          make([]*Clause, 1),
		unitQueue:       NewQueue[int](128),
		order:           newDecisionOrder(),
		seenVar:         &ResetSet{},
		restartInterval: opts.RestartInterval,
	}
	s.seenVar.Expand() // slot for the unused variable 0
	return s
}

// NumAssigned returns the number of variables currently on the trail.
func (s *Solver) NumAssigned() int {
	return len(s.trail)
}

// NumConstraints returns the number of original clauses.
func (s *Solver) NumConstraints() int {
	return len(s.clauses) - len(s.learnts)
}

// NumLearnts returns the number of clauses learned so far.
func (s *Solver) NumLearnts() int {
	return len(s.learnts)
}

// LitValue returns the current truth value of literal l.
func (s *Solver) LitValue(l Literal) LBool {
	return s.litValue(l)
}

// Model returns the trail as a list of satisfied literals, in the order
// they were asserted (§6): each returned literal is true under the witness
// assignment. Variables never reached by a decision or propagation are
// omitted, as the output format explicitly allows.
func (s *Solver) Model() []Literal {
	return append([]Literal(nil), s.trail...)
}

// Solve runs the search driver of §4.5 to completion and returns True
// (satisfiable, see Model for the witness), False (unsatisfiable), or
// never returns Unknown: the core has no resource bound and always
// terminates (§4.6).
func (s *Solver) Solve() LBool {
	if s.unsat {
		return False
	}

	for {
		s.Iterations++

		s.unitProp()

		if s.hasConflict() {
			c := s.conflict
			s.conflict = nil

			if s.decisionLevel() == 0 {
				s.unsat = true
				return False
			}

			learned := s.analyze(c)
			if len(learned) == 0 {
				s.unsat = true
				return False
			}

			clause := s.addClauseInternal(learned, true)
			if clause == nil {
				// Trail-order resolution never produces a tautology or the
				// empty clause here (len(learned) > 0 was just checked, and
				// resolving out each propagated variable at most once keeps
				// the result non-tautological); a nil clause would mean
				// addClauseInternal's invariants were violated.
				log.Fatalf("sat: learned clause %v was dropped unexpectedly", learned)
			}
			s.Conflicts++

			if s.restartInterval > 0 && s.Conflicts%s.restartInterval == 0 {
				s.resetAll()
				s.Restarts++
			} else {
				s.backjump(clause)
			}
			continue
		}

		if s.NumAssigned() == s.numVars {
			return True
		}

		l := s.order.selectDecisionLiteral(s)
		s.decide(l)
	}
}

// backjump pops trail entries one at a time until the learned clause c is
// unit under the remaining trail (§4.5 step e), at which point it sits in
// the unit queue ready to be propagated on the next iteration.
func (s *Solver) backjump(c *Clause) {
	for len(s.trail) > 0 && !s.residuals[c.id].isUnit() {
		s.popOne()
	}
}
