package human

import (
	"testing"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/internal/puzzleio"
	"github.com/refap3/sudokututor/internal/sudoku/backtrack"
	"github.com/refap3/sudokututor/internal/sudoku/fixtures"
)

func mustParse(t *testing.T, text string) [81]int {
	t.Helper()
	grid, err := puzzleio.Parse(text)
	if err != nil {
		t.Fatalf("parsing puzzle: %v", err)
	}
	return grid
}

// A classic easy puzzle, must solve at tier 1.
func TestSolve_ClassicEasy_TierOne(t *testing.T) {
	grid := mustParse(t, fixtures.ClassicEasy)
	board, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	steps, err := Solve(board)
	if err != nil {
		t.Fatalf("expected solved, got error: %v", err)
	}
	if !board.IsSolved() {
		t.Fatal("expected board solved")
	}
	if len(steps) == 0 {
		t.Fatal("expected at least one step")
	}
	first := steps[0]
	if first.Strategy != "Full House" && first.Strategy != "Naked Single" && first.Strategy != "Hidden Single" {
		t.Errorf("expected first step to be a tier-1 strategy, got %q", first.Strategy)
	}

	fresh, _ := NewBoard(grid)
	rated, err := Rate(fresh)
	if err != nil {
		t.Fatalf("unexpected Rate error: %v", err)
	}
	if rated != core.Tier1 {
		t.Errorf("expected tier 1, got %d", rated)
	}
}

// Requires Pointing Pairs/Triples at minimum, tier >= 2.
func TestSolve_PointingPairTrigger_TierTwoOrHigher(t *testing.T) {
	grid := mustParse(t, fixtures.PointingPairTrigger)
	board, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	steps, err := Solve(board)
	if err != nil {
		t.Fatalf("expected solved, got error: %v", err)
	}
	found := false
	for _, s := range steps {
		if s.Strategy == "Pointing Pairs" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected a Pointing Pairs step somewhere in the trace")
	}
	fresh, _ := NewBoard(grid)
	rated, err := Rate(fresh)
	if err != nil {
		t.Fatalf("unexpected Rate error: %v", err)
	}
	if rated < core.Tier2 {
		t.Errorf("expected tier >= 2, got %d", rated)
	}
}

// Requires X-Wing, tier >= 3.
func TestSolve_XWing_TierThreeOrHigher(t *testing.T) {
	grid := mustParse(t, fixtures.XWingRequired)
	board, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	steps, err := Solve(board)
	if err != nil {
		t.Fatalf("expected solved, got error: %v", err)
	}
	found := false
	for _, s := range steps {
		if s.Strategy == "X-Wing" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected an X-Wing step somewhere in the trace")
	}
	fresh, _ := NewBoard(grid)
	rated, err := Rate(fresh)
	if err != nil {
		t.Fatalf("unexpected Rate error: %v", err)
	}
	if rated < core.Tier3 {
		t.Errorf("expected tier >= 3, got %d", rated)
	}
}

// Arto Inkala's "hardest" puzzle. Either solved at tier 4 or reported
// Stuck, in which case the backtracker must complete it.
func TestSolve_ArtoInkala_SolvedOrStuck(t *testing.T) {
	grid := mustParse(t, fixtures.ArtoInkala)
	board, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	rated, err := Rate(board)
	if err != nil {
		t.Fatalf("unexpected Rate error: %v", err)
	}

	_, solveErr := Solve(board)
	switch e := solveErr.(type) {
	case nil:
		if !board.IsSolved() {
			t.Fatal("expected board solved")
		}
		if rated != core.Tier4 {
			t.Errorf("expected max tier 4, got %d", rated)
		}
	case *core.StuckError:
		t.Logf("stuck after %q, verifying backtracker can finish it", e.LastStrategy)
		solution := backtrack.Solve(grid)
		if solution == nil {
			t.Fatal("expected backtracker to complete the stuck puzzle")
		}
		for i, v := range board.Cells {
			if v != 0 && v != solution[i] {
				t.Fatalf("partial grid cell %d = %d disagrees with backtracked solution %d", i, v, solution[i])
			}
		}
	default:
		t.Fatalf("unexpected error: %v", solveErr)
	}
}

// An already solved puzzle yields zero steps and rating 0.
func TestSolve_AlreadySolved_ZeroStepsZeroRating(t *testing.T) {
	grid := mustParse(t, fixtures.AlreadySolved)
	board, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	if !board.IsSolved() {
		t.Fatal("expected board already solved")
	}
	steps, err := Solve(board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("expected zero steps, got %d", len(steps))
	}
	rated, err := Rate(board)
	if err != nil {
		t.Fatalf("unexpected Rate error: %v", err)
	}
	if rated != core.TierNone {
		t.Errorf("expected tier 0, got %d", rated)
	}
}

// A duplicated given digit in a row is rejected at construction.
func TestNewBoard_DuplicateGiven_InvalidInitialBoard(t *testing.T) {
	grid := mustParse(t, fixtures.DuplicateGivenRow)
	_, err := NewBoard(grid)
	if err == nil {
		t.Fatal("expected ErrInvalidInitialBoard")
	}
	if _, ok := err.(*core.ErrInvalidInitialBoard); !ok {
		t.Errorf("expected *core.ErrInvalidInitialBoard, got %T", err)
	}
}

// Rating must be deterministic and idempotent.
func TestRate_Deterministic(t *testing.T) {
	grid := mustParse(t, fixtures.ClassicEasy)
	board1, _ := NewBoard(grid)
	board2, _ := NewBoard(grid)
	r1, err1 := Rate(board1)
	r2, err2 := Rate(board2)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if r1 != r2 {
		t.Errorf("rating not deterministic: %d != %d", r1, r2)
	}
}

// Every emitted step must strictly reduce the total candidate count and
// carry at least one placement or elimination.
func TestSolve_StepsStrictlyReduceCandidates(t *testing.T) {
	grid := mustParse(t, fixtures.PointingPairTrigger)
	board, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("unexpected NewBoard error: %v", err)
	}
	for {
		if board.IsSolved() {
			break
		}
		step := firstFiring(board)
		if step == nil {
			break
		}
		if step.Empty() {
			t.Fatal("emitted step has neither placements nor eliminations")
		}
		before := totalCandidates(board)
		if err := board.ApplyStep(step); err != nil {
			t.Fatalf("ApplyStep error: %v", err)
		}
		after := totalCandidates(board)
		if after >= before {
			t.Fatalf("step %q did not reduce candidates: %d -> %d", step.Strategy, before, after)
		}
	}
}

func totalCandidates(b *Board) int {
	total := 0
	for i := 0; i < 81; i++ {
		total += b.Candidates[i].Count()
	}
	return total
}
