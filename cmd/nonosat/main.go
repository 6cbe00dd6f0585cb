package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"

	"github.com/nonosat/nonosat/dimacs"
	"github.com/nonosat/nonosat/internal/boardgen"
	"github.com/nonosat/nonosat/nonogram"
)

func main() {
	opts := parseFlags()
	gologger.Info().Msg(opts.describe())

	strategy := nonogram.StrategyDNF
	if opts.Strategy == "ae" {
		strategy = nonogram.StrategyAutomaton
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		gologger.Fatal().Msgf("could not create output directory: %s", err)
	}

	encoder := nonogram.NewEncoder()

	if opts.Gen {
		runGen(opts, encoder, strategy)
		return
	}
	runDir(opts, encoder, strategy)
}

// runGen generates opts.Count random puzzles and encodes each.
func runGen(opts *options, encoder *nonogram.Encoder, strategy nonogram.Strategy) {
	puzzles, err := boardgen.Batch(opts.Rows, opts.Cols, opts.Count, opts.Density, opts.Seed)
	if err != nil {
		gologger.Fatal().Msgf("board generation failed: %s", err)
	}
	for i, p := range puzzles {
		if err := encodePuzzle(opts, encoder, strategy, i, p); err != nil {
			gologger.Error().Msgf("puzzle %d: %s", i, err)
		}
	}
	logStats(opts, encoder)
}

// runDir probes opts.InputDir for <index>.json puzzles, starting at index
// 0, skipping missing or malformed files and continuing past the holes
// until a configurable run of consecutive misses ends the scan.
func runDir(opts *options, encoder *nonogram.Encoder, strategy nonogram.Strategy) {
	skipped := 0
	misses := 0
	for i := 0; misses < opts.MaxIndex; i++ {
		path := filepath.Join(opts.InputDir, fmt.Sprintf("%d.json", i))
		f, err := os.Open(path)
		if err != nil {
			misses++
			continue
		}
		p, err := nonogram.DecodePuzzle(f)
		f.Close()
		if err != nil {
			gologger.Warning().Msgf("puzzle %d: skipping malformed input: %s", i, err)
			skipped++
			misses++
			continue
		}
		misses = 0
		if err := encodePuzzle(opts, encoder, strategy, i, p); err != nil {
			gologger.Error().Msgf("puzzle %d: %s", i, err)
			skipped++
		}
	}
	if skipped > 0 {
		gologger.Info().Msgf("skipped %d puzzle(s)", skipped)
	}
	logStats(opts, encoder)
}

func encodePuzzle(opts *options, encoder *nonogram.Encoder, strategy nonogram.Strategy, index int, p nonogram.Puzzle) error {
	formula, err := nonogram.Assemble(p, encoder, strategy)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	outPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%d.cnf", index))
	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	if err := dimacs.WriteCNF(out, formula); err != nil {
		return fmt.Errorf("write cnf: %w", err)
	}
	gologger.Verbose().Msgf("puzzle %d: %d vars, %d clauses -> %s", index, formula.NumVars, len(formula.Clauses), outPath)
	return nil
}

func logStats(opts *options, encoder *nonogram.Encoder) {
	if !opts.Verbose {
		return
	}
	stats := encoder.Stats()
	gologger.Verbose().Msgf("dnf memo: %d hits, %d misses; cnf memo: %d hits, %d misses",
		stats.DNFHits, stats.DNFMisses, stats.CNFHits, stats.CNFMisses)
}
