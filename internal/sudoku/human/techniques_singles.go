package human

import (
	"fmt"

	"github.com/refap3/sudokututor/internal/core"
	"github.com/refap3/sudokututor/pkg/constants"
)

// detectFullHouse finds a house with exactly one empty cell and places the
// missing digit there.
func detectFullHouse(b BoardInterface) *core.Step {
	for _, unit := range AllUnits() {
		var empty []int
		placed := Candidates(0)
		for _, idx := range unit.Cells {
			if v := b.GetCell(idx); v == 0 {
				empty = append(empty, idx)
			} else {
				placed = placed.Set(v)
			}
		}
		if len(empty) != 1 {
			continue
		}
		missing := AllCandidates.Subtract(placed)
		digit, ok := missing.Only()
		if !ok {
			continue
		}
		idx := empty[0]
		return &core.Step{
			Strategy:     "Full House",
			Placements:   []core.Placement{{Row: RowOf(idx), Col: ColOf(idx), Digit: digit}},
			PatternCells: []core.CellRef{ToCellRef(idx)},
			HouseKind:    unit.Type.houseKind(),
			HouseIndex:   unit.Index,
			Explanation:  fmt.Sprintf("%s has only one empty cell, %s; it must be %d.", houseName(unit), FormatCell(idx), digit),
			Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(idx)}, Secondary: ToCellRefs(unit.Cells)},
		}
	}
	return nil
}

// detectNakedSingle finds an empty cell with exactly one candidate.
func detectNakedSingle(b BoardInterface) *core.Step {
	for idx := 0; idx < constants.TotalCells; idx++ {
		if b.GetCell(idx) != 0 {
			continue
		}
		digit, ok := b.GetCandidatesAt(idx).Only()
		if !ok {
			continue
		}
		return &core.Step{
			Strategy:     "Naked Single",
			Placements:   []core.Placement{{Row: RowOf(idx), Col: ColOf(idx), Digit: digit}},
			PatternCells: []core.CellRef{ToCellRef(idx)},
			HouseIndex:   -1,
			Explanation:  fmt.Sprintf("%s has only one candidate remaining: %d.", FormatCell(idx), digit),
			Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(idx)}},
		}
	}
	return nil
}

// detectHiddenSingle finds a house in which a digit's candidate positions
// are confined to exactly one empty cell.
func detectHiddenSingle(b BoardInterface) *core.Step {
	for _, unit := range AllUnits() {
		for digit := 1; digit <= 9; digit++ {
			var positions []int
			for _, idx := range unit.Cells {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
					positions = append(positions, idx)
				}
			}
			if len(positions) != 1 {
				continue
			}
			idx := positions[0]
			return &core.Step{
				Strategy:     "Hidden Single",
				Placements:   []core.Placement{{Row: RowOf(idx), Col: ColOf(idx), Digit: digit}},
				PatternCells: []core.CellRef{ToCellRef(idx)},
				HouseKind:    unit.Type.houseKind(),
				HouseIndex:   unit.Index,
				Explanation:  fmt.Sprintf("In %s, %d can only go in %s.", houseName(unit), digit, FormatCell(idx)),
				Highlights:   core.Highlights{Primary: []core.CellRef{ToCellRef(idx)}, Secondary: ToCellRefs(unit.Cells)},
			}
		}
	}
	return nil
}

func houseName(u Unit) string {
	switch u.Type {
	case UnitRow:
		return fmt.Sprintf("row %d", u.Index+1)
	case UnitCol:
		return fmt.Sprintf("column %d", u.Index+1)
	default:
		return fmt.Sprintf("box %d", u.Index+1)
	}
}
