package human

import (
	"fmt"

	"github.com/refap3/sudokututor/internal/core"
)

type fishLine struct {
	line  int
	cross []int
}

func cellOf(line, cross int, byRow bool) int {
	if byRow {
		return IndexOf(line, cross)
	}
	return IndexOf(cross, line)
}

// makeFish returns a detector for X-Wing (size 2) or Swordfish (size 3),
// each tried row-based then column-based: for digit d, `size` lines each
// containing d in 2..size cross-positions whose cross-positions union to
// exactly `size` values form the pattern; d is eliminated from those
// cross-positions in every other line.
func makeFish(size int, name string) func(BoardInterface) *core.Step {
	return func(b BoardInterface) *core.Step {
		if step := fishVariant(b, size, name, true); step != nil {
			return step
		}
		return fishVariant(b, size, name, false)
	}
}

func fishVariant(b BoardInterface, size int, name string, byRow bool) *core.Step {
	for digit := 1; digit <= 9; digit++ {
		var lines []fishLine
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
			if len(cross) >= 2 && len(cross) <= size {
				lines = append(lines, fishLine{line: line, cross: cross})
			}
		}
		if len(lines) < size {
			continue
		}
		positionCombos := Combinations(indexRange(len(lines)), size)
		for _, combo := range positionCombos {
			// Cross-coordinates are 0-8, so they get their own bitmask
			// rather than reusing the 1-9 digit set.
			var crossMask uint16
			for _, pos := range combo {
				for _, c := range lines[pos].cross {
					crossMask |= 1 << uint(c)
				}
			}
			var crossVals []int
			for c := 0; c < 9; c++ {
				if crossMask&(1<<uint(c)) != 0 {
					crossVals = append(crossVals, c)
				}
			}
			if len(crossVals) != size {
				continue
			}
			comboLines := make(map[int]bool, size)
			var patternCells []int
			for _, pos := range combo {
				comboLines[lines[pos].line] = true
				for _, c := range lines[pos].cross {
					patternCells = append(patternCells, cellOf(lines[pos].line, c, byRow))
				}
			}
			var elims []core.Candidate
			for _, crossVal := range crossVals {
				for other := 0; other < 9; other++ {
					if comboLines[other] {
						continue
					}
					idx := cellOf(other, crossVal, byRow)
					if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
						elims = append(elims, MakeElimination(idx, digit))
					}
				}
			}
			if len(elims) == 0 {
				continue
			}
			lineWord, crossWord := "row", "column"
			if !byRow {
				lineWord, crossWord = "column", "row"
			}
			var lineNums, crossNums []int
			for _, pos := range combo {
				lineNums = append(lineNums, lines[pos].line+1)
			}
			for _, c := range crossVals {
				crossNums = append(crossNums, c+1)
			}
			return &core.Step{
				Strategy:     name,
				Eliminations: elims,
				PatternCells: ToCellRefs(patternCells),
				HouseIndex:   -1,
				Explanation: fmt.Sprintf("%s on %d across %ss %s confines it to %ss %s; eliminate elsewhere in those %ss.",
					name, digit, lineWord, FormatDigits(lineNums), crossWord, FormatDigits(crossNums), crossWord),
				Highlights: core.Highlights{Primary: ToCellRefs(patternCells)},
			}
		}
	}
	return nil
}

func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
