// Package http exposes the engine API over gin: solve, rate, generate,
// and uniqueness/brute-force checks against the textual puzzle format of
// internal/puzzleio.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/internal/puzzleio"
	"github.com/refap3/sudokututor/internal/sudoku/backtrack"
	"github.com/refap3/sudokututor/internal/sudoku/generate"
	"github.com/refap3/sudokututor/internal/sudoku/human"
	"github.com/refap3/sudokututor/pkg/config"
	"github.com/refap3/sudokututor/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires the engine API onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/rate", rateHandler)
		api.POST("/generate", generateHandler)
		api.POST("/validate", validateHandler)
		api.POST("/brute-force", bruteForceHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// PuzzleRequest carries a puzzle in the nine-line textual format.
type PuzzleRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

func parsePuzzle(c *gin.Context) ([constants.TotalCells]int, bool) {
	var req PuzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return [constants.TotalCells]int{}, false
	}
	grid, err := puzzleio.Parse(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return [constants.TotalCells]int{}, false
	}
	return grid, true
}

// solveHandler runs the driver to completion (or stuck) and returns the
// full step trace, final grid and outcome.
func solveHandler(c *gin.Context) {
	grid, ok := parsePuzzle(c)
	if !ok {
		return
	}

	board, err := human.NewBoard(grid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"outcome": "InvalidInitialBoard",
			"error":   err.Error(),
		})
		return
	}

	steps, err := human.Solve(board)
	resp := gin.H{
		"steps":      steps,
		"final_grid": puzzleio.Format(board.Cells),
	}
	switch e := err.(type) {
	case nil:
		resp["outcome"] = "Solved"
	case *core.StuckError:
		resp["outcome"] = "Stuck"
		resp["last_strategy"] = e.LastStrategy
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// rateHandler returns the puzzle's difficulty tier.
func rateHandler(c *gin.Context) {
	grid, ok := parsePuzzle(c)
	if !ok {
		return
	}
	board, err := human.NewBoard(grid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"tier": 0, "error": err.Error()})
		return
	}
	tier, err := human.Rate(board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tier": int(tier)})
}

// GenerateRequest requests a puzzle targeting Tier.
type GenerateRequest struct {
	Tier        int    `json:"tier" binding:"required"`
	MaxAttempts int    `json:"max_attempts"`
	Seed        *int64 `json:"seed"`
}

// generateHandler produces a puzzle targeting a tier.
func generateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Tier < constants.MinTier || req.Tier > constants.MaxTier {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tier must be between 1 and 4"})
		return
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = constants.DefaultMaxAttempts
	}
	seed := int64(0)
	if req.Seed != nil {
		seed = *req.Seed
	}

	puzzle, err := generate.Generate(core.Tier(req.Tier), maxAttempts, seed)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": puzzleio.Format(puzzle)})
}

// validateHandler reports whether a puzzle has exactly one solution.
func validateHandler(c *gin.Context) {
	grid, ok := parsePuzzle(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"unique": backtrack.HasUniqueSolution(grid)})
}

// bruteForceHandler solves with the backtracker directly, bypassing the
// human-deduction driver.
func bruteForceHandler(c *gin.Context) {
	grid, ok := parsePuzzle(c)
	if !ok {
		return
	}
	solution := backtrack.Solve(grid)
	if solution == nil {
		c.JSON(http.StatusOK, gin.H{"solved": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"solved": true, "solution": puzzleio.Format(*solution)})
}
