package nonogram

import "testing"

func TestEncoder_EncodeLine_bothStrategiesAgree(t *testing.T) {
	testCases := []struct {
		runs    []int
		lineLen int
	}{
		{runs: []int{2, 1}, lineLen: 5},
		{runs: []int{1, 1}, lineLen: 4},
		{runs: []int{3}, lineLen: 3},
	}
	for _, tc := range testCases {
		d := mustDescription(t, tc.runs...)

		aeEncoder := NewEncoder()
		aeNext := tc.lineLen + 1
		aeClauses, err := aeEncoder.EncodeLine(d, tc.lineLen, StrategyAutomaton, identityCellVar, &aeNext)
		if err != nil {
			t.Fatalf("EncodeLine(AE, %v, %d): %s", tc.runs, tc.lineLen, err)
		}

		deEncoder := NewEncoder()
		deNext := tc.lineLen + 1
		deClauses, err := deEncoder.EncodeLine(d, tc.lineLen, StrategyDNF, identityCellVar, &deNext)
		if err != nil {
			t.Fatalf("EncodeLine(DE, %v, %d): %s", tc.runs, tc.lineLen, err)
		}

		total := 1 << uint(tc.lineLen)
		for mask := 0; mask < total; mask++ {
			assign := map[int]bool{}
			for i := 0; i < tc.lineLen; i++ {
				assign[i+1] = mask&(1<<uint(i)) != 0
			}
			aeSat := satisfiableOverCells(t, d, tc.lineLen, assign, aeClauses)
			deSat := evalClauses(deClauses, assign)
			if aeSat != deSat {
				t.Errorf("runs=%v lineLen=%d mask=%d: AE-satisfiable=%v DE-satisfiable=%v", tc.runs, tc.lineLen, mask, aeSat, deSat)
			}
		}
	}
}

// satisfiableOverCells reports whether some extension of assign to the
// automaton encoding's auxiliary variables satisfies clauses, by directly
// simulating the NFA instead of searching: a cell assignment is AE-
// satisfiable iff it is a legal filling of d, and satisfyingAssignment
// already builds a witness for every legal filling.
func satisfiableOverCells(t *testing.T, d Description, lineLen int, cellAssign map[int]bool, clauses [][]int) bool {
	t.Helper()
	n, err := BuildNFA(d)
	if err != nil {
		t.Fatalf("BuildNFA: %s", err)
	}
	bits := make([]bool, lineLen)
	for i := 0; i < lineLen; i++ {
		bits[i] = cellAssign[i+1]
	}
	if !n.accept(bits) {
		return false
	}
	full := satisfyingAssignment(t, d, lineLen, cellAssign)
	return evalClauses(clauses, full)
}

func TestEncoder_EncodeLine_unknownStrategy(t *testing.T) {
	d := mustDescription(t, 1)
	e := NewEncoder()
	next := 2
	if _, err := e.EncodeLine(d, 1, Strategy(99), identityCellVar, &next); err == nil {
		t.Errorf("EncodeLine(unknown strategy): want error, got nil")
	}
}

func TestEncoder_Stats_tracksMemoHitsAndMisses(t *testing.T) {
	d := mustDescription(t, 2, 1)
	e := NewEncoder()
	next := 6
	if _, err := e.EncodeLine(d, 5, StrategyDNF, identityCellVar, &next); err != nil {
		t.Fatalf("EncodeLine: %s", err)
	}
	if _, err := e.EncodeLine(d, 5, StrategyDNF, identityCellVar, &next); err != nil {
		t.Fatalf("EncodeLine: %s", err)
	}
	stats := e.Stats()
	if stats.DNFMisses != 1 || stats.DNFHits != 1 {
		t.Errorf("Stats() = %+v, want exactly one miss then one hit", stats)
	}
}
