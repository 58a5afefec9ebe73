package human

import (
	"fmt"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/pkg/constants"
)

// detectUniqueRectangle finds a 2x2 block of empty cells spanning exactly
// two boxes, two rows and two columns, all carrying the same digit pair
// {d1,d2}, and resolves it as Type 1 (three "floor" cells with exactly
// {d1,d2} plus one "roof" cell with extra candidates: eliminate d1 and d2
// from the roof) or Type 2 (two floors and two roofs sharing one extra
// digit X: eliminate X from any cell seeing both roofs). Only these two
// patterns are detected; the other known rectangle types are not.
func detectUniqueRectangle(b BoardInterface) *core.Step {
	for r1 := 0; r1 < 9; r1++ {
		for r2 := r1 + 1; r2 < 9; r2++ {
			for c1 := 0; c1 < 9; c1++ {
				for c2 := c1 + 1; c2 < 9; c2++ {
					cells := [4]int{IndexOf(r1, c1), IndexOf(r1, c2), IndexOf(r2, c1), IndexOf(r2, c2)}
					boxes := map[int]bool{}
					for _, idx := range cells {
						boxes[BoxOf(idx)] = true
					}
					if len(boxes) != 2 {
						continue
					}
					allEmpty := true
					for _, idx := range cells {
						if b.GetCell(idx) != 0 {
							allEmpty = false
							break
						}
					}
					if !allEmpty {
						continue
					}
					if step := urPair(b, cells); step != nil {
						return step
					}
				}
			}
		}
	}
	return nil
}

func urPair(b BoardInterface, cells [4]int) *core.Step {
	for d1 := 1; d1 <= 9; d1++ {
		for d2 := d1 + 1; d2 <= 9; d2++ {
			pair := NewCandidates([]int{d1, d2})
			var floors, roofs []int
			ok := true
			for _, idx := range cells {
				cand := b.GetCandidatesAt(idx)
				if cand.Intersect(pair) != pair {
					ok = false
					break
				}
				if cand == pair {
					floors = append(floors, idx)
				} else {
					roofs = append(roofs, idx)
				}
			}
			if !ok {
				continue
			}
			if len(floors) == 3 && len(roofs) == 1 {
				roof := roofs[0]
				elims := []core.Candidate{MakeElimination(roof, d1), MakeElimination(roof, d2)}
				return &core.Step{
					Strategy:     "Unique Rectangle",
					Eliminations: elims,
					PatternCells: ToCellRefs(cells[:]),
					HouseIndex:   -1,
					Explanation: fmt.Sprintf("Cells %s form a Type 1 unique rectangle on {%d,%d}: %s cannot hold either, or the puzzle would have two solutions.",
						FormatCells(cells[:]), d1, d2, FormatCell(roof)),
					Highlights: core.Highlights{Primary: ToCellRefs(cells[:])},
				}
			}
			if len(floors) == 2 && len(roofs) == 2 {
				extra1 := b.GetCandidatesAt(roofs[0]).Subtract(pair)
				extra2 := b.GetCandidatesAt(roofs[1]).Subtract(pair)
				if extra1.Count() != 1 || extra1 != extra2 {
					continue
				}
				x, _ := extra1.Only()
				elims := FindEliminationsSeeing(b, x, roofs, roofs[0], roofs[1])
				if len(elims) == 0 {
					continue
				}
				return &core.Step{
					Strategy:     "Unique Rectangle",
					Eliminations: elims,
					PatternCells: ToCellRefs(cells[:]),
					HouseIndex:   -1,
					Explanation: fmt.Sprintf("Cells %s form a Type 2 unique rectangle on {%d,%d} with both roofs extra-carrying %d: eliminate %d from cells seeing both roofs.",
						FormatCells(cells[:]), d1, d2, x, x),
					Highlights: core.Highlights{Primary: ToCellRefs(roofs), Secondary: ToCellRefs(floors)},
				}
			}
		}
	}
	return nil
}

// detectBUGPlus1 handles the "bivalue universal grave + 1" endgame: every
// empty cell has exactly two candidates except one with exactly three; the
// trivalue cell's correct digit is the one occurring an odd number of times
// among empty cells in all three of its houses simultaneously.
func detectBUGPlus1(b BoardInterface) *core.Step {
	var trivalue int = -1
	for idx := 0; idx < constants.TotalCells; idx++ {
		if b.GetCell(idx) != 0 {
			continue
		}
		n := b.GetCandidatesAt(idx).Count()
		if n == 3 {
			if trivalue != -1 {
				return nil
			}
			trivalue = idx
		} else if n != 2 {
			return nil
		}
	}
	if trivalue == -1 {
		return nil
	}
	for _, digit := range b.GetCandidatesAt(trivalue).ToSlice() {
		rowCount := countEmptyWithDigit(b, RowIndices[RowOf(trivalue)], digit)
		colCount := countEmptyWithDigit(b, ColIndices[ColOf(trivalue)], digit)
		boxCount := countEmptyWithDigit(b, BoxIndices[BoxOf(trivalue)], digit)
		if rowCount%2 == 1 && colCount%2 == 1 && boxCount%2 == 1 {
			return &core.Step{
				Strategy:     "BUG+1",
				Placements:   []core.Placement{{Row: RowOf(trivalue), Col: ColOf(trivalue), Digit: digit}},
				PatternCells: []core.CellRef{ToCellRef(trivalue)},
				HouseIndex:   -1,
				Explanation:  fmt.Sprintf("Every other empty cell is bivalue; %s must be %d to avoid a bivalue universal grave.", FormatCell(trivalue), digit),
				Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(trivalue)}},
			}
		}
	}
	return nil
}

func countEmptyWithDigit(b BoardInterface, cells []int, digit int) int {
	n := 0
	for _, idx := range cells {
		if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
			n++
		}
	}
	return n
}
