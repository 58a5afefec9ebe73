package human

import (
	"fmt"
	"sort"

	"github.com/refap3/sudokututor/internal/core"
)

// linesWithTwo returns, for digit, each line index (row if byRow else
// column) that has exactly two candidate cells for digit, paired with
// those two cross-coordinates.
func linesWithTwo(b BoardInterface, digit int, byRow bool) map[int][2]int {
	out := make(map[int][2]int)
	for line := 0; line < 9; line++ {
		cells := RowIndices[line]
		if !byRow {
			cells = ColIndices[line]
		}
		var cross []int
		for _, idx := range cells {
			if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
				c := ColOf(idx)
				if !byRow {
					c = RowOf(idx)
				}
				cross = append(cross, c)
			}
		}
		if len(cross) == 2 {
			out[line] = [2]int{cross[0], cross[1]}
		}
	}
	return out
}

// detectSkyscraper finds two lines (rows, then the column-based mirror)
// each with exactly two candidate cells for a digit, sharing one
// cross-coordinate (the trunk); if the two unshared ("roof") cells lie in
// different boxes, the digit is eliminated from every cell seeing both
// roofs.
func detectSkyscraper(b BoardInterface) *core.Step {
	for digit := 1; digit <= 9; digit++ {
		if step := skyscraperVariant(b, digit, true); step != nil {
			return step
		}
		if step := skyscraperVariant(b, digit, false); step != nil {
			return step
		}
	}
	return nil
}

func skyscraperVariant(b BoardInterface, digit int, byRow bool) *core.Step {
	lines := linesWithTwo(b, digit, byRow)
	var lineNums []int
	for l := range lines {
		lineNums = append(lineNums, l)
	}
	sort.Ints(lineNums)
	for i := 0; i < len(lineNums); i++ {
		for j := i + 1; j < len(lineNums); j++ {
			l1, l2 := lineNums[i], lineNums[j]
			pair1, pair2 := lines[l1], lines[l2]
			var shared, roof1, roof2 int
			switch {
			case pair1[0] == pair2[0]:
				shared, roof1, roof2 = pair1[0], pair1[1], pair2[1]
			case pair1[0] == pair2[1]:
				shared, roof1, roof2 = pair1[0], pair1[1], pair2[0]
			case pair1[1] == pair2[0]:
				shared, roof1, roof2 = pair1[1], pair1[0], pair2[1]
			case pair1[1] == pair2[1]:
				shared, roof1, roof2 = pair1[1], pair1[0], pair2[0]
			default:
				continue
			}
			trunkA, trunkB := cellOf(l1, shared, byRow), cellOf(l2, shared, byRow)
			roofA, roofB := cellOf(l1, roof1, byRow), cellOf(l2, roof2, byRow)
			if BoxOf(roofA) == BoxOf(roofB) {
				continue
			}
			elims := FindEliminationsSeeing(b, digit, []int{trunkA, trunkB, roofA, roofB}, roofA, roofB)
			if len(elims) == 0 {
				continue
			}
			lineWord := "row"
			if !byRow {
				lineWord = "column"
			}
			return &core.Step{
				Strategy:     "Skyscraper",
				Eliminations: elims,
				PatternCells: ToCellRefs([]int{trunkA, trunkB, roofA, roofB}),
				HouseIndex:   -1,
				Explanation: fmt.Sprintf("Skyscraper on %d across %ss %d and %d: eliminate it from cells seeing both roof cells %s, %s.",
					digit, lineWord, l1+1, l2+1, FormatCell(roofA), FormatCell(roofB)),
				Highlights: core.Highlights{Primary: ToCellRefs([]int{roofA, roofB}), Secondary: ToCellRefs([]int{trunkA, trunkB})},
			}
		}
	}
	return nil
}

// detectTwoStringKite finds a row and column each with exactly two
// candidate cells for a digit that share one of those cells (the pivot),
// with the two remaining (tail) cells in different boxes; the digit is
// eliminated from every cell seeing both tails.
func detectTwoStringKite(b BoardInterface) *core.Step {
	for digit := 1; digit <= 9; digit++ {
		rowTwo := linesWithTwo(b, digit, true)
		colTwo := linesWithTwo(b, digit, false)
		var rows []int
		for row := range rowTwo {
			rows = append(rows, row)
		}
		sort.Ints(rows)
		for _, row := range rows {
			rowCols := rowTwo[row]
			for _, pivotCol := range rowCols {
				colRows, ok := colTwo[pivotCol]
				if !ok {
					continue
				}
				if colRows[0] != row && colRows[1] != row {
					continue
				}
				tailCol := rowCols[0]
				if tailCol == pivotCol {
					tailCol = rowCols[1]
				}
				tailRow := colRows[0]
				if tailRow == row {
					tailRow = colRows[1]
				}
				pivot := IndexOf(row, pivotCol)
				tailRowCell := IndexOf(row, tailCol)
				tailColCell := IndexOf(tailRow, pivotCol)
				if BoxOf(tailRowCell) == BoxOf(tailColCell) {
					continue
				}
				elims := FindEliminationsSeeing(b, digit, []int{pivot, tailRowCell, tailColCell}, tailRowCell, tailColCell)
				if len(elims) == 0 {
					continue
				}
				return &core.Step{
					Strategy:     "2-String Kite",
					Eliminations: elims,
					PatternCells: ToCellRefs([]int{tailRowCell, pivot, tailColCell}),
					HouseIndex:   -1,
					Explanation: fmt.Sprintf("2-String Kite on %d through pivot %s: eliminate it from cells seeing both %s and %s.",
						digit, FormatCell(pivot), FormatCell(tailRowCell), FormatCell(tailColCell)),
					Highlights: core.Highlights{Primary: ToCellRefs([]int{tailRowCell, tailColCell}), Secondary: []core.CellRef{ToCellRef(pivot)}},
				}
			}
		}
	}
	return nil
}
