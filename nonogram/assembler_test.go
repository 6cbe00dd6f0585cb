package nonogram

import "testing"

func smallPuzzle(t *testing.T) Puzzle {
	t.Helper()
	return Puzzle{
		Rows:    2,
		Columns: 2,
		RowDesc: []Description{mustDescription(t, 1), mustDescription(t)},
		ColDesc: []Description{mustDescription(t, 1), mustDescription(t)},
	}
}

func TestAssemble_automaton_satisfiesUniqueSolution(t *testing.T) {
	p := smallPuzzle(t)
	e := NewEncoder()
	formula, err := Assemble(p, e, StrategyAutomaton)
	if err != nil {
		t.Fatalf("Assemble: %s", err)
	}
	// Unique solution: cell (0,0) filled, every other cell empty.
	assign := map[int]bool{
		p.CellVar(0, 0): true,
		p.CellVar(0, 1): false,
		p.CellVar(1, 0): false,
		p.CellVar(1, 1): false,
	}
	// The automaton encoding also needs its auxiliary state and transition
	// variables set. Assemble allocates them line by line (row 0, then
	// column 0; the empty lines take none), so each line's witness from
	// satisfyingAssignment is shifted onto that line's block.
	next := p.Rows*p.Columns + 1
	lines := []struct {
		d     Description
		cells []int
	}{
		{p.RowDesc[0], []int{p.CellVar(0, 0), p.CellVar(0, 1)}},
		{p.ColDesc[0], []int{p.CellVar(0, 0), p.CellVar(1, 0)}},
	}
	for _, line := range lines {
		lineLen := len(line.cells)
		local := map[int]bool{}
		for k, v := range line.cells {
			local[k+1] = assign[v]
		}
		for v, b := range satisfyingAssignment(t, line.d, lineLen, local) {
			if v > lineLen {
				assign[v-(lineLen+1)+next] = b
			}
		}
		next += line.d.UniqueVarCount(lineLen)
	}
	if !evalClauses(formula.Clauses, assign) {
		t.Errorf("Assemble(AE): the unique solution does not satisfy the formula")
	}
}

func TestAssemble_dnf_satisfiesUniqueSolution(t *testing.T) {
	p := smallPuzzle(t)
	e := NewEncoder()
	formula, err := Assemble(p, e, StrategyDNF)
	if err != nil {
		t.Fatalf("Assemble: %s", err)
	}
	assign := map[int]bool{
		p.CellVar(0, 0): true,
		p.CellVar(0, 1): false,
		p.CellVar(1, 0): false,
		p.CellVar(1, 1): false,
	}
	if !evalClauses(formula.Clauses, assign) {
		t.Errorf("Assemble(DE): the unique solution does not satisfy the formula")
	}
	if formula.NumVars != p.Rows*p.Columns {
		t.Errorf("Assemble(DE): NumVars = %d, want %d (DE path only ever uses cell variables)", formula.NumVars, p.Rows*p.Columns)
	}
}

func TestAssemble_dnf_rejectsWrongAssignment(t *testing.T) {
	p := smallPuzzle(t)
	e := NewEncoder()
	formula, err := Assemble(p, e, StrategyDNF)
	if err != nil {
		t.Fatalf("Assemble: %s", err)
	}
	// Filling the wrong cell should not satisfy the formula.
	assign := map[int]bool{
		p.CellVar(0, 0): false,
		p.CellVar(0, 1): true,
		p.CellVar(1, 0): false,
		p.CellVar(1, 1): false,
	}
	if evalClauses(formula.Clauses, assign) {
		t.Errorf("Assemble(DE): an illegal filling satisfied the formula")
	}
}

func TestAssemble_emptyPuzzleForcesAllCellsEmpty(t *testing.T) {
	p := Puzzle{
		Rows:    1,
		Columns: 3,
		RowDesc: []Description{mustDescription(t)},
		ColDesc: []Description{mustDescription(t), mustDescription(t), mustDescription(t)},
	}
	e := NewEncoder()
	formula, err := Assemble(p, e, StrategyDNF)
	if err != nil {
		t.Fatalf("Assemble: %s", err)
	}
	for c := 0; c < 3; c++ {
		assign := map[int]bool{p.CellVar(0, c): true}
		if evalClauses(formula.Clauses, assign) {
			t.Errorf("cell (0,%d) filled should violate the all-empty puzzle", c)
		}
	}
}

func TestCleanUnitLiterals_keepsConsistentAssignmentSatisfied(t *testing.T) {
	clauses := [][]int{
		{1},
		{-1, 2},
		{1, 3},
		{-2, -3},
	}
	cleaned := cleanUnitLiterals(clauses)

	assign := map[int]bool{1: true, 2: true, 3: false}
	if !evalClauses(cleaned, assign) {
		t.Errorf("cleanUnitLiterals: expected consistent assignment to satisfy cleaned clauses")
	}
}
