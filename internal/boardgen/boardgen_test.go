package boardgen

import (
	"testing"

	"github.com/nonosat/nonosat/nonogram"
)

func TestBoard_deterministicForSameSeed(t *testing.T) {
	a, err := Board(6, 7, 0.4, 42)
	if err != nil {
		t.Fatalf("Board: %s", err)
	}
	b, err := Board(6, 7, 0.4, 42)
	if err != nil {
		t.Fatalf("Board: %s", err)
	}
	if !sameDescriptions(a.RowDesc, b.RowDesc) || !sameDescriptions(a.ColDesc, b.ColDesc) {
		t.Errorf("Board(seed=42) produced different puzzles across calls")
	}
}

func TestBoard_densityZeroIsAllEmpty(t *testing.T) {
	p, err := Board(4, 5, 0, 1)
	if err != nil {
		t.Fatalf("Board: %s", err)
	}
	for i, d := range p.RowDesc {
		if d.Len() != 0 {
			t.Errorf("row %d = %v, want empty at density 0", i, d.Runs())
		}
	}
	for i, d := range p.ColDesc {
		if d.Len() != 0 {
			t.Errorf("column %d = %v, want empty at density 0", i, d.Runs())
		}
	}
}

func TestBoard_densityOneIsFullLine(t *testing.T) {
	p, err := Board(3, 4, 1, 1)
	if err != nil {
		t.Fatalf("Board: %s", err)
	}
	for i, d := range p.RowDesc {
		if d.Len() != 1 || d.Sum() != p.Columns {
			t.Errorf("row %d = %v, want a single run spanning all %d columns", i, d.Runs(), p.Columns)
		}
	}
}

func TestBoard_rejectsInvalidDensity(t *testing.T) {
	testCases := []float64{-0.1, 1.1}
	for _, density := range testCases {
		if _, err := Board(3, 3, density, 1); err == nil {
			t.Errorf("Board(density=%v): want error, got nil", density)
		}
	}
}

func TestBoard_rejectsNonPositiveDimensions(t *testing.T) {
	testCases := []struct{ rows, cols int }{{0, 3}, {3, 0}, {-1, 3}}
	for _, tc := range testCases {
		if _, err := Board(tc.rows, tc.cols, 0.5, 1); err == nil {
			t.Errorf("Board(%d, %d): want error, got nil", tc.rows, tc.cols)
		}
	}
}

func TestBatch_seedsDeterministicallyPerBoard(t *testing.T) {
	first, err := Batch(5, 5, 3, 0.5, 100)
	if err != nil {
		t.Fatalf("Batch: %s", err)
	}
	second, err := Batch(5, 5, 3, 0.5, 100)
	if err != nil {
		t.Fatalf("Batch: %s", err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("Batch returned %d and %d puzzles, want 3 each", len(first), len(second))
	}
	for i := range first {
		if !sameDescriptions(first[i].RowDesc, second[i].RowDesc) || !sameDescriptions(first[i].ColDesc, second[i].ColDesc) {
			t.Errorf("board %d differs across identically-seeded Batch calls", i)
		}
	}

	direct, err := Board(5, 5, 0.5, 100+2)
	if err != nil {
		t.Fatalf("Board: %s", err)
	}
	if !sameDescriptions(first[2].RowDesc, direct.RowDesc) {
		t.Errorf("Batch board 2 does not match Board(base+2) directly, want base+int64(i) seeding")
	}
}

func TestBatch_propagatesBoardError(t *testing.T) {
	if _, err := Batch(0, 5, 2, 0.5, 1); err == nil {
		t.Errorf("Batch(invalid dimensions): want error, got nil")
	}
}

func sameDescriptions(a, b []nonogram.Description) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameRuns(a[i].Runs(), b[i].Runs()) {
			return false
		}
	}
	return true
}

func sameRuns(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
