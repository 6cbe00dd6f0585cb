package nonogram

import "fmt"

// NFA is the nondeterministic automaton over {0,1} accepting exactly the
// strings that match a Description. Its states 0..States-1 need only
// three boolean vectors because every transition is either a self-loop on
// 0, an incoming 0 from the previous state, or an incoming 1 from the
// previous state.
type NFA struct {
	States int

	// SelfZeros[i] is set iff state i has a 0 self-loop.
	SelfZeros []bool
	// InZeros[i] is set iff state i has an incoming 0 from state i-1.
	InZeros []bool
	// InOnes[i] is set iff state i has an incoming 1 from state i-1.
	InOnes []bool
}

// BuildNFA constructs the NFA for d. d must have at least one run; the
// empty description has no NFA and is handled upstream as a shortcut.
func BuildNFA(d Description) (NFA, error) {
	runs := d.Runs()
	t := len(runs)
	if t == 0 {
		return NFA{}, fmt.Errorf("nonogram: empty description has no NFA")
	}

	n := d.Sum() + t
	selfZeros := make([]bool, n)
	inZeros := make([]bool, n)
	inOnes := make([]bool, n)

	d1 := runs[0]
	selfZeros[0] = true
	for k := 0; k < d1; k++ {
		inOnes[k+1] = true
	}
	selfZeros[n-1] = true

	p := d1
	for j := 2; j <= t; j++ {
		dj := runs[j-1]
		idx := p + j - 1
		selfZeros[idx] = true
		inZeros[idx] = true
		for k := 0; k < dj; k++ {
			inOnes[p+j+k] = true
		}
		p += dj
	}

	return NFA{States: n, SelfZeros: selfZeros, InZeros: inZeros, InOnes: inOnes}, nil
}

// hasZeroTransition reports whether any 0-labelled transition (self-loop
// or incoming) terminates at state i.
func (n NFA) hasZeroTransition(i int) bool {
	return n.SelfZeros[i] || n.InZeros[i]
}

// accept reports whether s is a string over {0,1} of length L (s[k]=true
// means the k-th cell is filled) that the NFA accepts starting from state
// 0 and ending in state n-1. It is a reference implementation used by
// tests to check the CNF encoding against a brute-force walk.
func (n NFA) accept(s []bool) bool {
	states := map[int]bool{0: true}
	for _, bit := range s {
		next := map[int]bool{}
		for i := range states {
			if !bit {
				if n.SelfZeros[i] {
					next[i] = true
				}
				if i+1 < n.States && n.InZeros[i+1] {
					next[i+1] = true
				}
			} else {
				if i+1 < n.States && n.InOnes[i+1] {
					next[i+1] = true
				}
			}
		}
		states = next
		if len(states) == 0 {
			return false
		}
	}
	return states[n.States-1]
}
