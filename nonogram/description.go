// Package nonogram encodes Nonogram line descriptions into propositional
// CNF, using either an automaton-product encoding or a memoized DNF-to-CNF
// conversion, and assembles per-line encodings into a DIMACS formula for a
// whole puzzle.
package nonogram

import "fmt"

// Description is the ordered sequence of run lengths for one Nonogram
// line (row or column). A Description with zero runs is the distinct
// "empty line" variant — it is never represented as a linked list with a
// dangling head node, just a slice of length zero, so there is nothing to
// special-case when walking it.
type Description struct {
	runs []int
}

// NewDescription validates runs (every entry must be a positive run
// length) and returns the corresponding Description. A nil or empty runs
// slice yields the empty description.
func NewDescription(runs []int) (Description, error) {
	for i, r := range runs {
		if r < 1 {
			return Description{}, fmt.Errorf("nonogram: run %d has non-positive length %d", i, r)
		}
	}
	cp := make([]int, len(runs))
	copy(cp, runs)
	return Description{runs: cp}, nil
}

// Runs returns the run lengths in order. The returned slice must not be
// mutated by the caller.
func (d Description) Runs() []int {
	return d.runs
}

// Len returns t, the number of runs in the description.
func (d Description) Len() int {
	return len(d.runs)
}

// Sum returns S(D), the sum of all run lengths.
func (d Description) Sum() int {
	s := 0
	for _, r := range d.runs {
		s += r
	}
	return s
}

// FitsIn reports whether the description can be realized in a line of
// the given length: S(D) + t - 1 <= L.
func (d Description) FitsIn(lineLen int) bool {
	t := d.Len()
	if t == 0 {
		return lineLen >= 0
	}
	return d.Sum()+t-1 <= lineLen
}

// UniqueVarCount predicts the number of distinct auxiliary variables
// (excluding the lineLen cell variables) that the automaton encoding of d
// allocates over a line of the given length: (L+1)(t+s) state variables
// plus L(t+s+1) transition variables. The empty description needs none.
func (d Description) UniqueVarCount(lineLen int) int {
	if d.Len() == 0 {
		return 0
	}
	t, s := d.Len(), d.Sum()
	return (2*lineLen+1)*(t+s) + lineLen
}

// ClauseCount predicts the number of clauses emitted by the automaton
// encoding of d over a line of the given length.
func (d Description) ClauseCount(lineLen int) int {
	if d.Len() == 0 {
		return lineLen
	}
	t, s := d.Len(), d.Sum()
	return (5*lineLen+2)*(t+s+1) - 4
}

// FormulaVarCount predicts the total number of variable occurrences
// across all clauses of the automaton encoding of d over a line of the
// given length (i.e. the sum of clause widths).
func (d Description) FormulaVarCount(lineLen int) int {
	if d.Len() == 0 {
		return lineLen
	}
	t, s := d.Len(), d.Sum()
	return (13*lineLen+2)*t + 9*lineLen - 2 + (11*lineLen+2)*s
}
