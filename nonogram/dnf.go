package nonogram

// dnfEntry caches the set of legal fillings for one (description, line
// length) pair. terms is nil exactly when the description does not fit
// in the line (a cache hit that records infeasibility, not a miss).
// scaledTerms is the write-once rewrite of terms into signed cell-index
// literals, populated lazily the first time a caller needs it.
type dnfEntry struct {
	fits        bool
	terms       [][]int8
	scaled      bool
	scaledTerms [][]int
}

// dnfNode is one node of the DNF memo tree T_D: the path from the root to
// a node is a description (a sequence of run lengths), and the node
// caches, per line length, the DNF of all legal fillings of that
// description in a line of that length.
type dnfNode struct {
	children map[int]*dnfNode
	lengths  map[int]*dnfEntry
}

func newDNFNode() *dnfNode {
	return &dnfNode{children: map[int]*dnfNode{}, lengths: map[int]*dnfEntry{}}
}

// dnfTree is T_D. It is walked iteratively by description value, never by
// recursing over the tree's own shape, so the tree's depth cannot grow
// the Go call stack.
type dnfTree struct {
	root *dnfNode
}

func newDNFTree() *dnfTree {
	return &dnfTree{root: newDNFNode()}
}

func (t *dnfTree) node(runs []int) *dnfNode {
	n := t.root
	for _, r := range runs {
		child, ok := n.children[r]
		if !ok {
			child = newDNFNode()
			n.children[r] = child
		}
		n = child
	}
	return n
}

// fill computes (if not already cached) Fill(d, lineLen): the DNF of
// every legal filling of d in a line of length lineLen, as a slice of
// terms each holding lineLen indicator values (-1 empty, +1 filled).
func (t *dnfTree) fill(d Description, lineLen int) [][]int8 {
	node := t.node(d.Runs())
	if entry, ok := node.lengths[lineLen]; ok {
		return entry.terms
	}

	var terms [][]int8
	switch {
	case lineLen < 0 || !d.FitsIn(lineLen):
		terms = nil
	case d.Len() == 0:
		term := make([]int8, lineLen)
		for i := range term {
			term[i] = -1
		}
		terms = [][]int8{term}
	default:
		runs := d.Runs()
		d1 := runs[0]
		rest, _ := NewDescription(runs[1:])

		var pinned [][]int8
		if remaining := lineLen - d1 - 1; remaining >= 0 {
			for _, sub := range t.fill(rest, remaining) {
				term := make([]int8, 0, lineLen)
				for i := 0; i < d1; i++ {
					term = append(term, 1)
				}
				term = append(term, -1)
				term = append(term, sub...)
				pinned = append(pinned, term)
			}
		} else if remaining == -1 && rest.Len() == 0 {
			// The last run fills the line exactly: no trailing empty cell.
			term := make([]int8, d1)
			for i := range term {
				term[i] = 1
			}
			pinned = [][]int8{term}
		}

		var shifted [][]int8
		for _, sub := range t.fill(d, lineLen-1) {
			term := make([]int8, 0, lineLen)
			term = append(term, -1)
			term = append(term, sub...)
			shifted = append(shifted, term)
		}

		terms = append(pinned, shifted...)
	}

	node.lengths[lineLen] = &dnfEntry{fits: terms != nil, terms: terms}
	return terms
}

// scaled returns Fill(d, lineLen) rewritten into signed cell-variable
// literals (+j+1 for a filled cell j, -(j+1) for an empty one), computing
// and caching the rewrite on first use.
func (t *dnfTree) scaled(d Description, lineLen int) [][]int {
	node := t.node(d.Runs())
	entry, ok := node.lengths[lineLen]
	if !ok {
		t.fill(d, lineLen)
		entry = node.lengths[lineLen]
	}
	if entry.scaled {
		return entry.scaledTerms
	}
	entry.scaledTerms = make([][]int, len(entry.terms))
	for i, term := range entry.terms {
		entry.scaledTerms[i] = scaleIndicatorTerm(term)
	}
	entry.scaled = true
	return entry.scaledTerms
}

func scaleIndicatorTerm(term []int8) []int {
	out := make([]int, len(term))
	for j, ind := range term {
		v := j + 1
		if ind < 0 {
			v = -v
		}
		out[j] = v
	}
	return out
}
