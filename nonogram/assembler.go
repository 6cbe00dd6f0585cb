package nonogram

import (
	"fmt"
	"math"

	"github.com/nonosat/nonosat/dimacs"
)

// maxVariables is the largest variable count the assembler will allocate:
// 2^31-1, the largest value a DIMACS "p cnf V M" header can portably
// declare. A puzzle whose cell count or auxiliary-variable allocation
// would exceed it is refused rather than silently wrapping or truncating.
const maxVariables = math.MaxInt32

// assembleState tracks the DE pipeline's one-way progression through the
// stages named by the Puzzle Assembler: every puzzle moves forward
// through these states exactly once on its way to EMITTED. AE puzzles
// skip directly from initState to linesUnioned, since there is no DNF or
// CNF memo stage to pass through.
type assembleState int

const (
	initState assembleState = iota
	dnfMemoReady
	dnfScaled
	cnfMemoReady
	linesUnioned
	subsumedState
	cleaned
	emitted
)

// Assemble builds the global DIMACS CNF for p using strategy, drawing
// memoized per-line work from e. The returned CNFFormula's clauses are
// ordered rows-first (row index ascending) then columns-first, per the
// puzzle's ordering guarantee.
func Assemble(p Puzzle, e *Encoder, strategy Strategy) (dimacs.CNFFormula, error) {
	state := initState

	cellVars := int64(p.Rows) * int64(p.Columns)
	if cellVars > maxVariables {
		return dimacs.CNFFormula{}, fmt.Errorf("nonogram: puzzle has %d cell variables, exceeds the %d variable limit", cellVars, maxVariables)
	}
	nextVar := int(cellVars) + 1

	var all [][]int
	appendLine := func(lineLen int, d Description, cellVar CellVar) error {
		if d.Len() == 0 {
			for k := 0; k < lineLen; k++ {
				all = append(all, []int{-cellVar(k)})
			}
			return nil
		}
		clauses, err := e.EncodeLine(d, lineLen, strategy, cellVar, &nextVar)
		if err != nil {
			return err
		}
		if int64(nextVar)-1 > maxVariables {
			return fmt.Errorf("nonogram: variable allocation reached %d, exceeds the %d variable limit", nextVar-1, maxVariables)
		}
		all = append(all, clauses...)
		return nil
	}

	if strategy == StrategyDNF {
		state = dnfMemoReady
	}

	for r, d := range p.RowDesc {
		row := r
		cellVar := func(k int) int { return p.CellVar(row, k) }
		if err := appendLine(p.Columns, d, cellVar); err != nil {
			return dimacs.CNFFormula{}, fmt.Errorf("nonogram: row %d: %w", r, err)
		}
	}
	if strategy == StrategyDNF {
		state = dnfScaled
	}
	for c, d := range p.ColDesc {
		col := c
		cellVar := func(k int) int { return p.CellVar(k, col) }
		if err := appendLine(p.Rows, d, cellVar); err != nil {
			return dimacs.CNFFormula{}, fmt.Errorf("nonogram: column %d: %w", c, err)
		}
	}
	if strategy == StrategyDNF {
		state = cnfMemoReady
	}

	state = linesUnioned

	if strategy == StrategyDNF {
		all = cleanUnitLiterals(all)
		state = subsumedState
		all = RemoveSubsumed(all)
		state = cleaned
	}

	numVars := p.Rows * p.Columns
	if strategy == StrategyAutomaton {
		numVars = nextVar - 1
	}
	formula := dimacs.CNFFormula{NumVars: numVars, Clauses: all}
	state = emitted
	_ = state

	return formula, nil
}

// cleanUnitLiterals implements the DE-only pass of §4.5 step 5: find
// every unit clause, fix that literal's polarity, delete the negation of
// any fixed literal from every other clause, and run subsumption. A
// clause that becomes empty after deletion (both a literal and its
// negation were forced) signals an unsatisfiable puzzle and is left
// as an explicit empty clause so downstream DIMACS consumers see the
// contradiction rather than a silently dropped constraint.
func cleanUnitLiterals(clauses [][]int) [][]int {
	fixed := map[int]bool{}
	for _, c := range clauses {
		if len(c) == 1 {
			fixed[c[0]] = true
		}
	}
	if len(fixed) == 0 {
		return RemoveSubsumed(clauses)
	}

	out := make([][]int, 0, len(clauses))
	for _, c := range clauses {
		if len(c) == 1 {
			out = append(out, c)
			continue
		}
		var kept []int
		satisfied := false
		for _, lit := range c {
			if fixed[lit] {
				satisfied = true
				break
			}
			if fixed[-lit] {
				continue
			}
			kept = append(kept, lit)
		}
		if satisfied {
			continue
		}
		out = append(out, kept)
	}
	return RemoveSubsumed(out)
}
