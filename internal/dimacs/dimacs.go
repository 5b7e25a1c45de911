// Package dimacs loads DIMACS CNF files into a solver (§6, external
// interfaces: "DIMACS parsing is external to the core"). Parsing itself is
// delegated to github.com/rhartert/dimacs; this package only adapts that
// library's Builder callbacks into sat.Solver calls.
package dimacs

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/haldorsen/cdclsat/internal/sat"
)

// dimacsWritter is the subset of *sat.Solver that LoadDIMACS needs to
// populate an instance. It never reports an error itself: an empty clause
// is instead signaled through the solver's own unsatisfiability state,
// following the convention of the core's AddClause.
type dimacsWritter interface {
	AddVariable() int
	AddClause(lits []sat.Literal) error
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return file, nil
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &gzipReadCloser{gr, file}, nil
}

// gzipReadCloser closes both the gzip reader and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gerr := g.Reader.Close()
	ferr := g.file.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

// LoadDIMACS reads a DIMACS CNF file at filename into dw. Gzip-compressed
// input is supported either by explicit request (gzipped=true) or by a
// ".gz" file name suffix, matching the teacher's gzip convenience flag.
func LoadDIMACS(filename string, gzipped bool, dw dimacsWritter) error {
	gzipped = gzipped || strings.HasSuffix(filename, ".gz")

	r, err := open(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	joined, err := joinMultilineClauses(r)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}

	b := &builder{solver: dw}
	if err := dimacs.ReadBuilder(joined, b); err != nil {
		return fmt.Errorf("error parsing file %q: %w", filename, err)
	}
	return nil
}

// joinMultilineClauses merges physical clause lines that lack a terminating
// "0" token with whatever follows, until a terminator is found. This is
// necessary because dimacs.ReadBuilder (github.com/rhartert/dimacs) treats
// every physical line as one complete clause and has no notion of a clause
// spanning multiple lines — but DIMACS CNF allows exactly that. Merged lines
// are joined with a space, so a single literal token split across two lines
// is read as two literals. Problem ("p") and comment
// ("c") lines are never merged: a clause must not be interrupted by either.
func joinMultilineClauses(r io.Reader) (io.Reader, error) {
	scanner := bufio.NewScanner(r)
	var out bytes.Buffer
	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		out.WriteString(strings.Join(pending, " "))
		out.WriteByte('\n')
		pending = pending[:0]
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line[0] == 'c' || line[0] == 'p' {
			flush()
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		pending = append(pending, line)
		fields := strings.Fields(line)
		if fields[len(fields)-1] == "0" {
			flush()
		}
	}
	flush() // a dangling clause with no "0" at EOF is still forwarded as-is;
	// the library parses it as a complete clause regardless, since it only
	// treats "0" as an optional early terminator, never a requirement.

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &out, nil
}

// builder adapts dimacs.Builder to a dimacsWritter: variables are declared
// eagerly on the problem line (DIMACS variable IDs are 1-based and dense,
// matching the core's own AddVariable numbering), and each clause line is
// translated from DIMACS' {..,-2,-1,1,2,..} convention into sat.Literal
// values.
type builder struct {
	solver dimacsWritter
	litBuf []sat.Literal
}

func (b *builder) Problem(nVars int, nClauses int) {
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	b.litBuf = make([]sat.Literal, 0, 32)
}

func (b *builder) Clause(tmpClause []int) {
	b.litBuf = b.litBuf[:0]
	for _, l := range tmpClause {
		switch {
		case l > 0:
			b.litBuf = append(b.litBuf, sat.PositiveLiteral(l))
		case l < 0:
			b.litBuf = append(b.litBuf, sat.NegativeLiteral(-l))
		}
	}
	b.solver.AddClause(b.litBuf)
}

func (b *builder) Comment(line string) {} // ignored, matching the upstream reader's default
