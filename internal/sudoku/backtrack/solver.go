// Package backtrack provides brute-force Sudoku solving used only for
// verification, uniqueness checks, and full-grid generation — never for
// the hint/tutoring path, which belongs to the human-strategy solver.
package backtrack

import (
	"math/rand"

	"github.com/refap3/sudokututor/pkg/constants"
)

// Solve finds a solution for grid using minimum-remaining-value backtracking.
// It returns the solved 81-cell grid, or nil if no solution exists. The
// input is left unmodified.
func Solve(grid [81]int) *[81]int {
	board := grid
	if solve(&board) {
		return &board
	}
	return nil
}

// HasUniqueSolution reports whether grid has exactly one solution.
func HasUniqueSolution(grid [81]int) bool {
	return CountSolutions(grid, constants.SolutionCountLimit) == 1
}

// CountSolutions counts solutions to grid, stopping early once maxCount is
// reached.
func CountSolutions(grid [81]int, maxCount int) int {
	board := grid
	count := 0
	countSolutions(&board, &count, maxCount)
	return count
}

// nextCell picks the empty cell with the fewest remaining candidates
// (minimum-remaining-value heuristic), returning its index and the digits
// it can still hold. idx is -1 if the board is fully filled, and digits is
// empty with idx >= 0 only on a contradiction (no legal digit anywhere).
func nextCell(board *[81]int) (idx int, digits []int) {
	best := -1
	var bestDigits []int
	for i := 0; i < 81; i++ {
		if board[i] != 0 {
			continue
		}
		cand := candidatesAt(board, i)
		if best == -1 || len(cand) < len(bestDigits) {
			best, bestDigits = i, cand
			if len(cand) <= 1 {
				break
			}
		}
	}
	return best, bestDigits
}

func candidatesAt(board *[81]int, idx int) []int {
	row, col := idx/9, idx%9
	var out []int
	for d := 1; d <= 9; d++ {
		if isValid(board, row, col, d) {
			out = append(out, d)
		}
	}
	return out
}

func isValid(board *[81]int, row, col, digit int) bool {
	for c := 0; c < 9; c++ {
		if board[row*9+c] == digit {
			return false
		}
	}
	for r := 0; r < 9; r++ {
		if board[r*9+col] == digit {
			return false
		}
	}
	boxRow, boxCol := (row/3)*3, (col/3)*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if board[r*9+c] == digit {
				return false
			}
		}
	}
	return true
}

func solve(board *[81]int) bool {
	idx, digits := nextCell(board)
	if idx == -1 {
		return true
	}
	for _, d := range digits {
		board[idx] = d
		if solve(board) {
			return true
		}
		board[idx] = 0
	}
	return false
}

func countSolutions(board *[81]int, count *int, maxCount int) {
	if *count >= maxCount {
		return
	}
	idx, digits := nextCell(board)
	if idx == -1 {
		*count++
		return
	}
	for _, d := range digits {
		board[idx] = d
		countSolutions(board, count, maxCount)
		board[idx] = 0
		if *count >= maxCount {
			return
		}
	}
}

// GenerateFullGrid produces a complete, randomly-filled valid grid
// deterministic in seed, using math/rand's documented PRNG in place of a
// hand-rolled generator.
func GenerateFullGrid(seed int64) [81]int {
	rng := rand.New(rand.NewSource(seed))
	var board [81]int
	fillGrid(&board, rng)
	return board
}

func fillGrid(board *[81]int, rng *rand.Rand) bool {
	idx, digits := nextCell(board)
	if idx == -1 {
		return true
	}
	rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	for _, d := range digits {
		board[idx] = d
		if fillGrid(board, rng) {
			return true
		}
		board[idx] = 0
	}
	return false
}

// CarveGivens visits every cell of a complete grid once, in an order
// shuffled by seed, clearing each cell whose removal keeps the solution
// unique and restoring the others. It stops once maxEmpty cells are empty.
func CarveGivens(fullGrid [81]int, maxEmpty int, seed int64) [81]int {
	puzzle := fullGrid
	rng := rand.New(rand.NewSource(seed))
	positions := rng.Perm(81)
	empty := 0
	for _, pos := range positions {
		if empty >= maxEmpty {
			break
		}
		saved := puzzle[pos]
		puzzle[pos] = 0
		if HasUniqueSolution(puzzle) {
			empty++
		} else {
			puzzle[pos] = saved
		}
	}
	return puzzle
}
