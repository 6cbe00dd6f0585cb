package nonogram

import "sort"

// cnfEntry caches the CNF clauses equivalent to one (description, line
// length) DNF, keyed the same way as dnfEntry.
type cnfEntry struct {
	clauses [][]int
}

type cnfNode struct {
	children map[int]*cnfNode
	lengths  map[int]*cnfEntry
}

func newCNFNode() *cnfNode {
	return &cnfNode{children: map[int]*cnfNode{}, lengths: map[int]*cnfEntry{}}
}

// cnfTree is T_C, the memo tree of already-converted CNF formulas.
type cnfTree struct {
	root *cnfNode
}

func newCNFTree() *cnfTree {
	return &cnfTree{root: newCNFNode()}
}

func (t *cnfTree) node(runs []int) *cnfNode {
	n := t.root
	for _, r := range runs {
		child, ok := n.children[r]
		if !ok {
			child = newCNFNode()
			n.children[r] = child
		}
		n = child
	}
	return n
}

// convert computes (if not cached) the CNF equivalent of dnf.scaled(d,
// lineLen): a DNF T1 ∨ T2 ∨ ... ∨ Tn distributes into the conjunction,
// over every choice of one literal from each Ti, of the disjunction of
// the chosen literals. Terms that are already a single literal are
// factored out instead of branched over, since there is only one choice
// to make for them; tautological clauses (containing a variable and its
// negation) are dropped as vacuously true; and a ledger of already
// accepted clauses prunes any partial clause already subsumed by one of
// them, since growing a subsumed clause can never escape subsumption.
func (t *cnfTree) convert(d Description, lineLen int, dnf *dnfTree) [][]int {
	node := t.node(d.Runs())
	if entry, ok := node.lengths[lineLen]; ok {
		return entry.clauses
	}

	terms := dnf.scaled(d, lineLen)

	var unit []int
	var branching [][]int
	for _, term := range terms {
		if len(term) == 1 {
			unit = append(unit, term[0])
		} else {
			branching = append(branching, term)
		}
	}

	// Process the branching terms most-constrained first: sorting by
	// ascending size keeps the backtracking tree as narrow as possible
	// near the root, where pruning matters most.
	sort.Slice(branching, func(i, j int) bool { return len(branching[i]) < len(branching[j]) })

	led := newLedger()
	for _, lit := range unit {
		led.add([]int{lit})
	}

	var clauses [][]int
	var rec func(idx int, partial []int)
	rec = func(idx int, partial []int) {
		if led.subsumed(partial) {
			return
		}
		if idx == len(branching) {
			clause := append(append([]int{}, unit...), partial...)
			if isTautology(clause) {
				return
			}
			if led.subsumed(clause) {
				return
			}
			led.add(clause)
			clauses = append(clauses, clause)
			return
		}
		for _, lit := range branching[idx] {
			rec(idx+1, append(partial, lit))
		}
	}
	if len(branching) == 0 {
		clause := append([]int{}, unit...)
		if len(clause) > 0 && !isTautology(clause) {
			clauses = append(clauses, clause)
		}
	} else {
		rec(0, nil)
	}

	node.lengths[lineLen] = &cnfEntry{clauses: clauses}
	return clauses
}

func isTautology(clause []int) bool {
	seen := make(map[int]bool, len(clause))
	for _, lit := range clause {
		if seen[-lit] {
			return true
		}
		seen[lit] = true
	}
	return false
}
