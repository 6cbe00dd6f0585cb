package main

import (
	"fmt"
	"strconv"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// options holds the parsed CLI surface: either directory mode (read JSON
// puzzles from InputDir, write DIMACS CNFs to OutputDir) or generator
// mode (Gen set, synthesizing Count random boards at Density/Seed).
type options struct {
	InputDir  string
	OutputDir string

	Gen     bool
	Density float64
	Count   int
	Seed    int64
	Rows    int
	Cols    int

	Strategy string
	MaxIndex int

	Verbose bool
	Silent  bool
}

func parseFlags() *options {
	var density, seed string
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Encodes nonogram puzzles as DIMACS CNF files.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.InputDir, "in", "i", "", "directory of <index>.json puzzles to encode"),
		flagSet.BoolVar(&opts.Gen, "gen", false, "generate random puzzles instead of reading -in"),
		flagSet.StringVarP(&density, "density", "d", "0.5", "fill probability per cell for -gen"),
		flagSet.IntVar(&opts.Count, "count", 1, "number of puzzles to generate for -gen"),
		flagSet.StringVar(&seed, "seed", "1", "base random seed for -gen"),
		flagSet.IntVarP(&opts.Rows, "rows", "r", 10, "board rows for -gen"),
		flagSet.IntVar(&opts.Cols, "cols", 10, "board columns for -gen"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.OutputDir, "out", "o", "", "directory to write <index>.cnf files"),
		flagSet.StringVarP(&opts.Strategy, "strategy", "s", "ae", "encoding strategy: ae (automaton) or de (dnf)"),
		flagSet.IntVar(&opts.MaxIndex, "max-index", 16, "consecutive missing indices that end directory-mode probing"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	parsedDensity, err := strconv.ParseFloat(density, 64)
	if err != nil {
		gologger.Fatal().Msgf("invalid -density %q: %s", density, err)
	}
	opts.Density = parsedDensity

	parsedSeed, err := strconv.ParseInt(seed, 10, 64)
	if err != nil {
		gologger.Fatal().Msgf("invalid -seed %q: %s", seed, err)
	}
	opts.Seed = parsedSeed

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if !opts.Gen && opts.InputDir == "" {
		gologger.Fatal().Msgf("one of -in or -gen is required")
	}
	if opts.OutputDir == "" {
		gologger.Fatal().Msgf("-out is required")
	}
	if opts.Strategy != "ae" && opts.Strategy != "de" {
		gologger.Fatal().Msgf("invalid strategy: %s (must be 'ae' or 'de')", opts.Strategy)
	}

	return opts
}

func (o *options) describe() string {
	if o.Gen {
		return fmt.Sprintf("generating %d puzzle(s) at %dx%d density=%.2f seed=%d", o.Count, o.Rows, o.Cols, o.Density, o.Seed)
	}
	return fmt.Sprintf("reading puzzles from %s", o.InputDir)
}
