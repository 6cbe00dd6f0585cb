package nonogram

import "fmt"

// Strategy selects which of the two line-encoding pipelines Encoder uses.
type Strategy int

const (
	// StrategyAutomaton builds clauses directly from the line's NFA (§4.2).
	StrategyAutomaton Strategy = iota
	// StrategyDNF builds the line's DNF of legal fillings first and
	// converts it to CNF by distribution (§4.3, §4.4).
	StrategyDNF
)

func (s Strategy) String() string {
	switch s {
	case StrategyAutomaton:
		return "automaton"
	case StrategyDNF:
		return "dnf"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// EncoderStats reports cumulative memo-tree activity across every
// EncodeLine call an Encoder has served, for diagnostics and for the CLI's
// verbose mode.
type EncoderStats struct {
	DNFHits, DNFMisses int
	CNFHits, CNFMisses int
}

// Encoder owns the two memo trees (T_D for legal fillings, T_C for their
// CNF conversions) for the lifetime of one encoding run, so repeated
// descriptions across a puzzle's rows and columns are only ever solved
// once. An Encoder is not safe for concurrent use; callers that want to
// encode lines in parallel should give each worker its own Encoder, or
// serialize access with external synchronization.
type Encoder struct {
	dnf   *dnfTree
	cnf   *cnfTree
	stats EncoderStats
}

// NewEncoder returns a ready-to-use Encoder with empty memo trees.
func NewEncoder() *Encoder {
	return &Encoder{dnf: newDNFTree(), cnf: newCNFTree()}
}

// EncodeLine returns the clauses asserting that the cells addressed by
// cellVar over a line of the given length satisfy d, using the requested
// strategy. cellVar may be any mapping for either strategy. For StrategyDNF, the
// clauses are built internally against the DNF/CNF memo trees' identity
// literals (+k+1 for cell k) and then remapped onto cellVar before
// returning, so the caller never renumbers them itself. For
// StrategyAutomaton, cellVar is used directly while building the
// clauses, and *nextVar is advanced past the auxiliary variables the call
// allocates; StrategyDNF leaves *nextVar unchanged.
func (e *Encoder) EncodeLine(d Description, length int, strategy Strategy, cellVar CellVar, nextVar *int) ([][]int, error) {
	switch strategy {
	case StrategyAutomaton:
		return EncodeAutomaton(d, length, cellVar, nextVar)
	case StrategyDNF:
		if !d.FitsIn(length) {
			return nil, fmt.Errorf("nonogram: description %v does not fit in line of length %d", d.Runs(), length)
		}
		node := e.dnf.node(d.Runs())
		if _, hit := node.lengths[length]; hit {
			e.stats.DNFHits++
		} else {
			e.stats.DNFMisses++
		}
		cnode := e.cnf.node(d.Runs())
		if _, hit := cnode.lengths[length]; hit {
			e.stats.CNFHits++
		} else {
			e.stats.CNFMisses++
		}
		clauses := e.cnf.convert(d, length, e.dnf)
		return remapClauses(clauses, cellVar), nil
	default:
		return nil, fmt.Errorf("nonogram: unknown strategy %v", strategy)
	}
}

// Stats returns cumulative memo-tree hit/miss counts since NewEncoder.
func (e *Encoder) Stats() EncoderStats {
	return e.stats
}

// remapClauses rewrites clauses expressed over identity cell literals
// (+-(k+1) for cell k) onto the variables cellVar assigns those cells.
func remapClauses(clauses [][]int, cellVar CellVar) [][]int {
	out := make([][]int, len(clauses))
	for i, clause := range clauses {
		remapped := make([]int, len(clause))
		for j, lit := range clause {
			k := lit
			neg := k < 0
			if neg {
				k = -k
			}
			v := cellVar(k - 1)
			if neg {
				v = -v
			}
			remapped[j] = v
		}
		out[i] = remapped
	}
	return out
}
