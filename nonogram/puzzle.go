package nonogram

import (
	"encoding/json"
	"fmt"
	"io"
)

// Puzzle is one nonogram board: its dimensions and the row/column
// descriptions that constrain it.
type Puzzle struct {
	Rows    int
	Columns int
	RowDesc []Description
	ColDesc []Description
}

// puzzleJSON mirrors the on-disk JSON schema exactly; Puzzle itself
// exposes validated Description values instead of raw int slices.
type puzzleJSON struct {
	RowCount    int     `json:"rowCount"`
	ColumnCount int     `json:"columnCount"`
	Rows        [][]int `json:"rows"`
	Columns     [][]int `json:"columns"`
}

// DecodePuzzle reads one JSON puzzle object from r and validates its
// shape: rowCount/columnCount must match the length of rows/columns, and
// every description must parse (runs ≥ 1).
func DecodePuzzle(r io.Reader) (Puzzle, error) {
	var raw puzzleJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Puzzle{}, fmt.Errorf("nonogram: decode puzzle: %w", err)
	}
	return puzzleFromJSON(raw)
}

func puzzleFromJSON(raw puzzleJSON) (Puzzle, error) {
	if raw.RowCount < 0 || raw.ColumnCount < 0 {
		return Puzzle{}, fmt.Errorf("nonogram: negative dimension: rowCount=%d columnCount=%d", raw.RowCount, raw.ColumnCount)
	}
	if len(raw.Rows) != raw.RowCount {
		return Puzzle{}, fmt.Errorf("nonogram: rowCount=%d but %d row descriptions given", raw.RowCount, len(raw.Rows))
	}
	if len(raw.Columns) != raw.ColumnCount {
		return Puzzle{}, fmt.Errorf("nonogram: columnCount=%d but %d column descriptions given", raw.ColumnCount, len(raw.Columns))
	}

	rowDesc, err := descriptionsFrom(raw.Rows)
	if err != nil {
		return Puzzle{}, fmt.Errorf("nonogram: row descriptions: %w", err)
	}
	colDesc, err := descriptionsFrom(raw.Columns)
	if err != nil {
		return Puzzle{}, fmt.Errorf("nonogram: column descriptions: %w", err)
	}

	p := Puzzle{Rows: raw.RowCount, Columns: raw.ColumnCount, RowDesc: rowDesc, ColDesc: colDesc}
	for i, d := range p.RowDesc {
		if !d.FitsIn(p.Columns) {
			return Puzzle{}, fmt.Errorf("nonogram: row %d description %v does not fit in %d columns", i, d.Runs(), p.Columns)
		}
	}
	for i, d := range p.ColDesc {
		if !d.FitsIn(p.Rows) {
			return Puzzle{}, fmt.Errorf("nonogram: column %d description %v does not fit in %d rows", i, d.Runs(), p.Rows)
		}
	}
	return p, nil
}

func descriptionsFrom(raw [][]int) ([]Description, error) {
	out := make([]Description, len(raw))
	for i, runs := range raw {
		d, err := NewDescription(runs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// CellVar is the puzzle-wide variable numbering v(r,c) = r*Columns + c + 1.
func (p Puzzle) CellVar(row, col int) int {
	return row*p.Columns + col + 1
}

// DescriptionsFromBoard derives the row and column descriptions implied by
// a fully filled board, for round-tripping a generated board back into a
// Puzzle without ambiguity about which run boundaries it encodes.
func DescriptionsFromBoard(board []bool, rows, cols int) (rowDesc, colDesc []Description, err error) {
	if len(board) != rows*cols {
		return nil, nil, fmt.Errorf("nonogram: board has %d cells, want %d (%d x %d)", len(board), rows*cols, rows, cols)
	}
	rowDesc = make([]Description, rows)
	for r := 0; r < rows; r++ {
		line := make([]bool, cols)
		copy(line, board[r*cols:(r+1)*cols])
		d, derr := runsFromLine(line)
		if derr != nil {
			return nil, nil, derr
		}
		rowDesc[r] = d
	}
	colDesc = make([]Description, cols)
	for c := 0; c < cols; c++ {
		line := make([]bool, rows)
		for r := 0; r < rows; r++ {
			line[r] = board[r*cols+c]
		}
		d, derr := runsFromLine(line)
		if derr != nil {
			return nil, nil, derr
		}
		colDesc[c] = d
	}
	return rowDesc, colDesc, nil
}

func runsFromLine(line []bool) (Description, error) {
	var runs []int
	inRun := false
	for _, filled := range line {
		switch {
		case filled && inRun:
			runs[len(runs)-1]++
		case filled:
			runs = append(runs, 1)
			inRun = true
		default:
			inRun = false
		}
	}
	return NewDescription(runs)
}
