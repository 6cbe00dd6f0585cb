package nonogram

import "fmt"

// CellVar maps a 0-based cell index within a line to its global DIMACS
// variable number. The puzzle assembler supplies one of these per line so
// the automaton encoder never has to know whether it is encoding a row or
// a column.
type CellVar func(cellIndex int) int

// EncodeAutomaton builds the clauses that assert "there exists an
// accepting walk of the NFA for d across a line of length lineLen",
// written over the cell variables returned by cellVar and a block of
// fresh auxiliary variables drawn from *nextVar. *nextVar is advanced past
// every variable this call allocates, so callers can share one counter
// across every line of a puzzle (the production "monotonic counter"
// discipline of the assembler).
//
// If d does not fit in lineLen, EncodeAutomaton returns an error: the AE
// path never emits an unsatisfiable formula, it rejects up front.
func EncodeAutomaton(d Description, lineLen int, cellVar CellVar, nextVar *int) ([][]int, error) {
	if !d.FitsIn(lineLen) {
		return nil, fmt.Errorf("nonogram: description %v does not fit in line of length %d", d.Runs(), lineLen)
	}

	if d.Len() == 0 {
		clauses := make([][]int, 0, lineLen)
		for k := 0; k < lineLen; k++ {
			clauses = append(clauses, []int{-cellVar(k)})
		}
		return clauses, nil
	}

	automaton, err := BuildNFA(d)
	if err != nil {
		return nil, err
	}
	n := automaton.States
	L := lineLen

	// zeroPos[i]/onePos[i] map a state index to its position within the
	// dense block of per-step transition variables, or -1 if no such
	// transition exists.
	zeroPos := make([]int, n)
	onePos := make([]int, n)
	numZero, numOne := 0, 0
	for i := 0; i < n; i++ {
		if automaton.hasZeroTransition(i) {
			zeroPos[i] = numZero
			numZero++
		} else {
			zeroPos[i] = -1
		}
		if automaton.InOnes[i] {
			onePos[i] = numOne
			numOne++
		} else {
			onePos[i] = -1
		}
	}
	perStepTrans := numZero + numOne

	sBase := *nextVar
	sVar := func(k, i int) int { return sBase + k*n + i }
	*nextVar += (L + 1) * n

	tBase := *nextVar
	tZero := func(k, i int) int { return tBase + k*perStepTrans + zeroPos[i] }
	tOne := func(k, i int) int { return tBase + k*perStepTrans + numZero + onePos[i] }
	*nextVar += L * perStepTrans

	clauses := make([][]int, 0, d.ClauseCount(L))

	for k := 0; k < L; k++ {
		x := cellVar(k)

		// 1. Transition implies label and target.
		for i := 0; i < n; i++ {
			if zeroPos[i] >= 0 {
				tv := tZero(k, i)
				clauses = append(clauses, []int{-tv, -x})
				clauses = append(clauses, []int{-tv, sVar(k+1, i)})
			}
			if onePos[i] >= 0 {
				tv := tOne(k, i)
				clauses = append(clauses, []int{-tv, x})
				clauses = append(clauses, []int{-tv, sVar(k+1, i)})
			}
		}

		// 2. Source state licenses its out-transitions.
		for i := 0; i < n; i++ {
			clause := []int{-sVar(k, i)}
			if automaton.SelfZeros[i] {
				clause = append(clause, tZero(k, i))
			}
			if i+1 < n && automaton.InZeros[i+1] {
				clause = append(clause, tZero(k, i+1))
			}
			if i+1 < n && automaton.InOnes[i+1] {
				clause = append(clause, tOne(k, i+1))
			}
			clauses = append(clauses, clause)
		}

		// 3. Target state is licensed by some incoming transition.
		for i := 0; i < n; i++ {
			clause := []int{-sVar(k+1, i)}
			if zeroPos[i] >= 0 {
				clause = append(clause, tZero(k, i))
			}
			if onePos[i] >= 0 {
				clause = append(clause, tOne(k, i))
			}
			clauses = append(clauses, clause)
		}

		// 4. Label is consistent with some active transition.
		zeroClause := []int{x}
		for i := 0; i < n; i++ {
			if zeroPos[i] >= 0 {
				zeroClause = append(zeroClause, tZero(k, i))
			}
		}
		clauses = append(clauses, zeroClause)

		oneClause := []int{-x}
		for i := 0; i < n; i++ {
			if onePos[i] >= 0 {
				oneClause = append(oneClause, tOne(k, i))
			}
		}
		clauses = append(clauses, oneClause)

		// 5. Transition implies a valid source state.
		for i := 0; i < n; i++ {
			if zeroPos[i] >= 0 {
				clause := []int{-tZero(k, i)}
				if automaton.InZeros[i] {
					clause = append(clause, sVar(k, i-1))
				}
				if automaton.SelfZeros[i] {
					clause = append(clause, sVar(k, i))
				}
				clauses = append(clauses, clause)
			}
			if onePos[i] >= 0 {
				clauses = append(clauses, []int{-tOne(k, i), sVar(k, i-1)})
			}
		}
	}

	// Boundary: start in state 0.
	for i := 1; i < n; i++ {
		clauses = append(clauses, []int{-sVar(0, i)})
	}
	// Boundary: end in the unique accept state n-1.
	for i := 0; i < n-1; i++ {
		clauses = append(clauses, []int{-sVar(L, i)})
	}

	return clauses, nil
}
