// Package generate builds puzzles targeted at a difficulty tier: fill a
// full grid, punch holes while preserving uniqueness, then keep only
// attempts the human solver rates close enough to the requested tier.
package generate

import (
	"math/rand"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/internal/sudoku/backtrack"
	"github.com/refap3/sudokututor/internal/sudoku/human"
	"github.com/refap3/sudokututor/pkg/constants"
)

// Generate produces a puzzle targeting tier, trying up to maxAttempts
// independent seeds derived from seed. Each attempt carves at most the
// tier's maximum number of empty cells. An attempt is accepted once its
// carved puzzle rates within one tier of the target, or rates unsolvable
// (TierNone) while targeting Tier4. It returns core.ErrGenerationFailed if
// no attempt qualifies.
func Generate(tier core.Tier, maxAttempts int, seed int64) ([81]int, error) {
	bounds, ok := constants.EmptyCellRange[int(tier)]
	if !ok {
		return [81]int{}, &core.ErrGenerationFailed{Tier: tier, Attempts: 0}
	}
	maxEmpty := bounds[1]
	rng := rand.New(rand.NewSource(seed))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		attemptSeed := rng.Int63()
		solution := backtrack.GenerateFullGrid(attemptSeed)
		puzzle := backtrack.CarveGivens(solution, maxEmpty, attemptSeed)

		board, err := human.NewBoard(puzzle)
		if err != nil {
			continue
		}
		rated, err := human.Rate(board)
		if err != nil {
			continue
		}

		acceptable := absTierDiff(rated, tier) <= 1 || (tier >= core.Tier4 && rated == core.TierNone)
		if acceptable {
			return puzzle, nil
		}
	}
	return [81]int{}, &core.ErrGenerationFailed{Tier: tier, Attempts: maxAttempts}
}

func absTierDiff(a, b core.Tier) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
