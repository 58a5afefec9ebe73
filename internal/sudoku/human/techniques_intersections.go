package human

import (
	"fmt"

	"github.com/refap3/sudokututor/internal/core"
)

// detectPointingPair finds a digit within a box whose candidate cells all
// share a row or column, letting it be eliminated from the rest of that
// row/column outside the box.
func detectPointingPair(b BoardInterface) *core.Step {
	for box := 0; box < 9; box++ {
		for digit := 1; digit <= 9; digit++ {
			var positions []int
			for _, idx := range BoxIndices[box] {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
					positions = append(positions, idx)
				}
			}
			if len(positions) < 2 || len(positions) > 3 {
				continue
			}
			if step := pointingLine(b, box, digit, positions, true); step != nil {
				return step
			}
			if step := pointingLine(b, box, digit, positions, false); step != nil {
				return step
			}
		}
	}
	return nil
}

func pointingLine(b BoardInterface, box, digit int, positions []int, byRow bool) *core.Step {
	line := RowOf(positions[0])
	if !byRow {
		line = ColOf(positions[0])
	}
	for _, idx := range positions[1:] {
		l := RowOf(idx)
		if !byRow {
			l = ColOf(idx)
		}
		if l != line {
			return nil
		}
	}
	lineCells := RowIndices[line]
	if !byRow {
		lineCells = ColIndices[line]
	}
	inBox := make(map[int]bool, len(BoxIndices[box]))
	for _, idx := range BoxIndices[box] {
		inBox[idx] = true
	}
	var elims []core.Candidate
	for _, idx := range lineCells {
		if inBox[idx] || b.GetCell(idx) != 0 || !b.GetCandidatesAt(idx).Has(digit) {
			continue
		}
		elims = append(elims, MakeElimination(idx, digit))
	}
	if len(elims) == 0 {
		return nil
	}
	kindWord := "pair"
	if len(positions) == 3 {
		kindWord = "triple"
	}
	lineWord := "row"
	if !byRow {
		lineWord = "column"
	}
	return &core.Step{
		Strategy:     "Pointing Pairs",
		Eliminations: elims,
		PatternCells: ToCellRefs(positions),
		HouseKind:    core.HouseBox,
		HouseIndex:   box,
		Explanation:  fmt.Sprintf("In box %d, %d's only candidate cells form a pointing %s confined to %s %d: eliminate it from the rest of that %s.", box+1, digit, kindWord, lineWord, line+1, lineWord),
		Highlights:   core.Highlights{Primary: ToCellRefs(positions), Secondary: ToCellRefs(lineCells)},
	}
}

// detectBoxLineReduction finds a digit within a row or column whose
// candidate cells all share a box, letting it be eliminated from the rest
// of that box ("claiming").
func detectBoxLineReduction(b BoardInterface) *core.Step {
	for _, byRow := range []bool{true, false} {
		for line := 0; line < 9; line++ {
			cells := RowIndices[line]
			lineKind := core.HouseRow
			if !byRow {
				cells = ColIndices[line]
				lineKind = core.HouseCol
			}
			for digit := 1; digit <= 9; digit++ {
				var positions []int
				for _, idx := range cells {
					if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
						positions = append(positions, idx)
					}
				}
				if len(positions) < 2 || len(positions) > 3 {
					continue
				}
				box := BoxOf(positions[0])
				sameBox := true
				for _, idx := range positions[1:] {
					if BoxOf(idx) != box {
						sameBox = false
						break
					}
				}
				if !sameBox {
					continue
				}
				inLine := make(map[int]bool, len(positions))
				for _, idx := range positions {
					inLine[idx] = true
				}
				var elims []core.Candidate
				for _, idx := range BoxIndices[box] {
					if inLine[idx] || b.GetCell(idx) != 0 || !b.GetCandidatesAt(idx).Has(digit) {
						continue
					}
					elims = append(elims, MakeElimination(idx, digit))
				}
				if len(elims) == 0 {
					continue
				}
				lineWord := "row"
				if !byRow {
					lineWord = "column"
				}
				return &core.Step{
					Strategy:     "Box-Line Reduction",
					Eliminations: elims,
					PatternCells: ToCellRefs(positions),
					HouseKind:    lineKind,
					HouseIndex:   line,
					Explanation:  fmt.Sprintf("In %s %d, %d is confined to box %d: eliminate it from the rest of that box.", lineWord, line+1, digit, box+1),
					Highlights:   core.Highlights{Primary: ToCellRefs(positions), Secondary: ToCellRefs(BoxIndices[box])},
				}
			}
		}
	}
	return nil
}
