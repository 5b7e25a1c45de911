package sat

import (
	"log"

	"github.com/rhartert/yagh"
)

// decisionOrder implements the decision heuristic of §4.5: the unassigned
// variable maximizing max(|L[+v]|, |L[−v]|), with ties broken
// deterministically in favor of the smallest v.
//
// It repurposes the teacher's own indexed binary heap (originally used for
// a VSIDS-style learned-activity score) as the priority structure for a
// purely static, occurrence-count score instead. The heap breaks ties using
// insertion order; since variables are declared in ascending ID order via
// AddVariable, that tie-break is exactly "smallest v wins".
type decisionOrder struct {
	heap *yagh.IntMap[float64]

	posCount []int // posCount[v] == |L[+v]|
	negCount []int // negCount[v] == |L[−v]|
}

func newDecisionOrder() *decisionOrder {
	o := &decisionOrder{
		heap:     yagh.New[float64](0),
		posCount: make([]int, 1), // index 0 unused, variables are 1-based
		negCount: make([]int, 1),
	}
	o.heap.GrowBy(1) // reserve index 0, which is never assigned a variable
	return o
}

// addVar registers a newly declared variable with the heuristic.
func (o *decisionOrder) addVar(v int) {
	o.posCount = append(o.posCount, 0)
	o.negCount = append(o.negCount, 0)
	o.heap.GrowBy(1)
	o.heap.Put(v, 0)
}

// bump updates v's occurrence score after l was added to the literal index,
// reprioritizing it in the heap if it is currently a candidate.
func (o *decisionOrder) bump(l Literal) {
	v := l.VarID()
	if l.IsPositive() {
		o.posCount[v]++
	} else {
		o.negCount[v]++
	}
	if o.heap.Contains(v) {
		o.heap.Put(v, -float64(max(o.posCount[v], o.negCount[v])))
	}
}

// reinsert makes v a candidate again after it is unassigned by a backtrack.
func (o *decisionOrder) reinsert(v int) {
	o.heap.Put(v, -float64(max(o.posCount[v], o.negCount[v])))
}

// selectDecisionLiteral pops the next branching literal: the unassigned
// variable with the highest occurrence score, assigned true if it appears
// at least as often positively as negatively, false otherwise (§4.5).
func (o *decisionOrder) selectDecisionLiteral(s *Solver) Literal {
	for {
		next, ok := o.heap.Pop()
		if !ok {
			log.Fatal("sat: decision heuristic ran out of candidates")
		}
		v := next.Elem
		if s.VarValue(v) != Unknown {
			continue // assigned by propagation since it was last a candidate
		}
		if o.posCount[v] >= o.negCount[v] {
			return PositiveLiteral(v)
		}
		return NegativeLiteral(v)
	}
}
