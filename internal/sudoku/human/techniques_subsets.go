package human

import (
	"fmt"
	"sort"

	"github.com/refap3/sudokututor/internal/core"
)

var setSizeName = map[int]string{2: "Pair", 3: "Triple", 4: "Quad"}

// makeNakedSet returns a detector for "Naked Pair/Triple/Quad" at the given
// size. For each house, any N empty
// cells whose candidates all lie within the same N-digit union have those
// digits eliminated from every other empty cell in the house.
func makeNakedSet(size int) func(BoardInterface) *core.Step {
	label := fmt.Sprintf("Naked %s", setSizeName[size])
	return func(b BoardInterface) *core.Step {
		for _, unit := range AllUnits() {
			var empty []int
			for _, idx := range unit.Cells {
				if b.GetCell(idx) == 0 {
					n := b.GetCandidatesAt(idx).Count()
					if n > 1 && n <= size {
						empty = append(empty, idx)
					}
				}
			}
			if len(empty) < size {
				continue
			}
			for _, combo := range Combinations(empty, size) {
				var union Candidates
				for _, idx := range combo {
					union = union.Union(b.GetCandidatesAt(idx))
				}
				if union.Count() != size {
					continue
				}
				comboSet := make(map[int]bool, size)
				for _, idx := range combo {
					comboSet[idx] = true
				}
				var elims []core.Candidate
				for _, idx := range unit.Cells {
					if comboSet[idx] || b.GetCell(idx) != 0 {
						continue
					}
					for _, d := range union.ToSlice() {
						if b.GetCandidatesAt(idx).Has(d) {
							elims = append(elims, MakeElimination(idx, d))
						}
					}
				}
				if len(elims) == 0 {
					continue
				}
				return &core.Step{
					Strategy:     label,
					Eliminations: elims,
					PatternCells: ToCellRefs(combo),
					HouseKind:    unit.Type.houseKind(),
					HouseIndex:   unit.Index,
					Explanation: fmt.Sprintf("In %s, %s are confined to %s: eliminate %s elsewhere in %s.",
						houseName(unit), FormatCells(combo), FormatDigits(union.ToSlice()), FormatDigits(union.ToSlice()), houseName(unit)),
					Highlights: core.Highlights{Primary: ToCellRefs(combo), Secondary: ToCellRefs(unit.Cells)},
				}
			}
		}
		return nil
	}
}

// makeHiddenSet returns a detector for "Hidden Pair/Triple/Quad" at the
// given size. For each house, any N
// digits whose candidate positions are all confined to the same N cells
// have every other candidate eliminated from those cells.
func makeHiddenSet(size int) func(BoardInterface) *core.Step {
	label := fmt.Sprintf("Hidden %s", setSizeName[size])
	return func(b BoardInterface) *core.Step {
		for _, unit := range AllUnits() {
			digitCells := make(map[int][]int)
			for digit := 1; digit <= 9; digit++ {
				for _, idx := range unit.Cells {
					if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
						digitCells[digit] = append(digitCells[digit], idx)
					}
				}
			}
			var digits []int
			for d, cells := range digitCells {
				if len(cells) >= 2 && len(cells) <= size {
					digits = append(digits, d)
				}
			}
			sort.Ints(digits)
			if len(digits) < size {
				continue
			}
			for _, combo := range Combinations(digits, size) {
				cellSet := make(map[int]bool)
				for _, d := range combo {
					for _, idx := range digitCells[d] {
						cellSet[idx] = true
					}
				}
				if len(cellSet) != size {
					continue
				}
				cells := make([]int, 0, size)
				for idx := range cellSet {
					cells = append(cells, idx)
				}
				sort.Ints(cells)
				comboDigits := NewCandidates(combo)
				var elims []core.Candidate
				for _, idx := range cells {
					extra := b.GetCandidatesAt(idx).Subtract(comboDigits)
					for _, d := range extra.ToSlice() {
						elims = append(elims, MakeElimination(idx, d))
					}
				}
				if len(elims) == 0 {
					continue
				}
				return &core.Step{
					Strategy:     label,
					Eliminations: elims,
					PatternCells: ToCellRefs(cells),
					HouseKind:    unit.Type.houseKind(),
					HouseIndex:   unit.Index,
					Explanation: fmt.Sprintf("In %s, %s are confined to %s: eliminate all other candidates there.",
						houseName(unit), FormatDigits(combo), FormatCells(cells)),
					Highlights: core.Highlights{Primary: ToCellRefs(cells), Secondary: ToCellRefs(unit.Cells)},
				}
			}
		}
		return nil
	}
}
