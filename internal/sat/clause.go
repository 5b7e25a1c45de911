package sat

import (
	"sort"
	"strings"
)

// Clause is an unordered set of literals, semantically a disjunction.
// Clauses are content-identified: two clauses with the same literal set are
// the same clause (§3). The canonical form keeps literals sorted so that
// duplicate learned clauses hash-cons to a single instance (§9,
// "Content-identified clauses").
type Clause struct {
	id       int
	literals []Literal
	learnt   bool
}

// ID returns the clause's identity in its owning store. IDs are stable for
// the lifetime of the solver.
func (c *Clause) ID() int {
	return c.id
}

// Literals returns the clause's canonical (sorted, duplicate-free) literal
// set. Callers must not modify the returned slice.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Learnt reports whether c was derived by the conflict analyzer rather than
// present in the original formula.
func (c *Clause) Learnt() bool {
	return c.learnt
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// canonicalize removes duplicate literals (set semantics, §3) and sorts the
// remainder so that two clauses with the same literal set always produce
// the same slice. It reports whether the clause is a tautology (contains
// both ℓ and ¬ℓ), in which case it is always satisfied and must not be
// added to the formula.
func canonicalize(lits []Literal) (canon []Literal, tautology bool) {
	seen := make(map[Literal]bool, len(lits))
	for _, l := range lits {
		if seen[l.Opposite()] {
			return nil, true
		}
		seen[l] = true
	}

	out := make([]Literal, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, false
}

// key returns the string used to hash-cons clauses by content: the
// canonical literal set must already be sorted and duplicate-free.
func key(canon []Literal) string {
	sb := strings.Builder{}
	for i, l := range canon {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}
