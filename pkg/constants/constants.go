// Package constants centralizes grid dimensions and solver/generator
// tuning values shared across the engine and its transports.
package constants

// Grid shape.
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17
)

// MaxSolverSteps bounds the driver loop so a runaway registry can never
// spin forever; a correctly implemented driver always terminates well
// before this via Solved or Stuck.
const MaxSolverSteps = 500

// SolutionCountLimit is the cutoff passed to the backtracker's early-exit
// solution counter when checking uniqueness.
const SolutionCountLimit = 2

// Tier bounds. Index 0 is unused (tier 0 means "not solvable by the 21
// strategies" and has no generator target).
const (
	MinTier = 1
	MaxTier = 4
)

// EmptyCellRange gives the generator's target empty-cell count range for
// each tier.
var EmptyCellRange = map[int][2]int{
	1: {45, 55},
	2: {55, 62},
	3: {60, 64},
	4: {64, 70},
}

// DefaultMaxAttempts is the generator's default retry budget.
const DefaultMaxAttempts = 100

// DefaultPort is the HTTP server's fallback listen port.
const DefaultPort = "8080"

// APIVersion is reported by the HTTP transport's health endpoint.
const APIVersion = "1.0.0"
