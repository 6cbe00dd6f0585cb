// Package boardgen generates random nonogram boards for batch testing of
// the encoder, independently filling each cell with a fixed density.
package boardgen

import (
	"fmt"
	"math/rand"

	"github.com/nonosat/nonosat/nonogram"
)

// Board generates a random rows x cols board at the given seed, filling
// each cell independently with probability density (0 <= density <= 1),
// then derives its row and column descriptions.
func Board(rows, cols int, density float64, seed int64) (nonogram.Puzzle, error) {
	if density < 0 || density > 1 {
		return nonogram.Puzzle{}, fmt.Errorf("boardgen: density %v out of range [0,1]", density)
	}
	if rows <= 0 || cols <= 0 {
		return nonogram.Puzzle{}, fmt.Errorf("boardgen: board dimensions must be positive, got %dx%d", rows, cols)
	}

	rng := rand.New(rand.NewSource(seed))
	cells := make([]bool, rows*cols)
	for i := range cells {
		cells[i] = rng.Float64() < density
	}

	rowDesc, colDesc, err := nonogram.DescriptionsFromBoard(cells, rows, cols)
	if err != nil {
		return nonogram.Puzzle{}, fmt.Errorf("boardgen: %w", err)
	}
	return nonogram.Puzzle{Rows: rows, Columns: cols, RowDesc: rowDesc, ColDesc: colDesc}, nil
}

// Batch generates count independent boards sharing one dimension and
// density, each seeded deterministically off base so a run is
// reproducible: board i uses seed base+int64(i).
func Batch(rows, cols, count int, density float64, base int64) ([]nonogram.Puzzle, error) {
	out := make([]nonogram.Puzzle, count)
	for i := 0; i < count; i++ {
		p, err := Board(rows, cols, density, base+int64(i))
		if err != nil {
			return nil, fmt.Errorf("boardgen: board %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}
