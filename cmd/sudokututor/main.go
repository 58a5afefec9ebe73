// Command sudokututor drives the engine from the command line: solve a
// puzzle and print its step trace, rate a puzzle's difficulty, or
// generate one targeting a tier.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/internal/puzzleio"
	"github.com/refap3/sudokututor/internal/sudoku/backtrack"
	"github.com/refap3/sudokututor/internal/sudoku/generate"
	"github.com/refap3/sudokututor/internal/sudoku/human"
	"github.com/refap3/sudokututor/pkg/constants"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "solve":
		runSolve(os.Args[2:])
	case "rate":
		runRate(os.Args[2:])
	case "generate":
		runGenerate(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	case "bruteforce":
		runBruteForce(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sudokututor <solve|rate|generate|check|bruteforce> [flags]")
}

func readPuzzle(path string) [constants.TotalCells]int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
		os.Exit(1)
	}
	grid, err := puzzleio.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing %s: %v\n", path, err)
		os.Exit(1)
	}
	return grid
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	file := fs.String("f", "", "puzzle file (nine-line textual format)")
	bruteForce := fs.Bool("brute-force", false, "fall back to brute force if stuck")
	fs.Parse(args)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "solve: -f is required")
		os.Exit(1)
	}
	grid := readPuzzle(*file)

	board, err := human.NewBoard(grid)
	if err != nil {
		fmt.Printf("InvalidInitialBoard: %v\n", err)
		os.Exit(1)
	}

	steps, err := human.Solve(board)
	for i, step := range steps {
		fmt.Printf("%3d. %-20s %s\n", i+1, step.Strategy, step.Explanation)
	}

	switch e := err.(type) {
	case nil:
		fmt.Println("Solved.")
		fmt.Println(puzzleio.Format(board.Cells))
	case *core.StuckError:
		fmt.Printf("Stuck after %q.\n", e.LastStrategy)
		if *bruteForce {
			if solution := backtrack.Solve(grid); solution != nil {
				fmt.Println("Brute-force completion:")
				fmt.Println(puzzleio.Format(*solution))
			} else {
				fmt.Println("Brute force found no solution.")
			}
		}
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "solver error: %v\n", err)
		os.Exit(1)
	}
}

func runRate(args []string) {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	file := fs.String("f", "", "puzzle file (nine-line textual format)")
	fs.Parse(args)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "rate: -f is required")
		os.Exit(1)
	}
	grid := readPuzzle(*file)

	board, err := human.NewBoard(grid)
	if err != nil {
		fmt.Printf("InvalidInitialBoard: %v\n", err)
		os.Exit(1)
	}
	tier, err := human.Rate(board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rate error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Tier: %d\n", tier)
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	tier := fs.Int("tier", 1, "target difficulty tier (1-4)")
	attempts := fs.Int("attempts", constants.DefaultMaxAttempts, "max generation attempts")
	seed := fs.Int64("seed", 1, "generator seed")
	fs.Parse(args)

	puzzle, err := generate.Generate(core.Tier(*tier), *attempts, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(puzzleio.Format(puzzle))
}

// runCheck reports whether a puzzle has exactly one solution, without
// running the human-deduction solver.
func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	file := fs.String("f", "", "puzzle file (nine-line textual format)")
	fs.Parse(args)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "check: -f is required")
		os.Exit(1)
	}
	grid := readPuzzle(*file)

	if backtrack.HasUniqueSolution(grid) {
		fmt.Println("unique solution")
		return
	}
	fmt.Println("not uniquely solvable")
	os.Exit(2)
}

// runBruteForce solves a puzzle with the MRV backtracker directly, bypassing
// the human-deduction driver entirely.
func runBruteForce(args []string) {
	fs := flag.NewFlagSet("bruteforce", flag.ExitOnError)
	file := fs.String("f", "", "puzzle file (nine-line textual format)")
	fs.Parse(args)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "bruteforce: -f is required")
		os.Exit(1)
	}
	grid := readPuzzle(*file)

	solution := backtrack.Solve(grid)
	if solution == nil {
		fmt.Println("no solution")
		os.Exit(2)
	}
	fmt.Println(puzzleio.Format(*solution))
}
